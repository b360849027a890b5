// Package parameters loads and validates the node and element parameters
// document consumed by the structural-analysis engine.
//
// A Config is built once by Load or Parse and is never mutated afterwards.
// It holds value types only, so it can be shared by any number of readers
// without locking.
package parameters

import "slices"

type Config struct {
	Nodes       NodeParameters      `yaml:"nodes" json:"nodes"`
	Elements    ElementSettings     `yaml:"element_settings" json:"element_settings"`
	Subassembly SubassemblySettings `yaml:"subassembly_settings" json:"subassembly_settings"`
}

type NodeParameters struct {
	TensionKj        TensionKjValues `yaml:"tension_kj_values" json:"tension_kj_values"`
	CompressionKj    float64         `yaml:"compression_kj_value" json:"compression_kj_value" validate:"gte=0"`
	ExternalRotation Rotation        `yaml:"external_node_rotation" json:"external_node_rotation"`
	InternalRotation Rotation        `yaml:"internal_node_rotation" json:"internal_node_rotation"`
	CrackingRotation float64         `yaml:"cracking_rotation" json:"cracking_rotation" validate:"gte=0"`
}

// TensionKjValues holds the joint tension coefficient for each node position.
// Base is optional: a null base means the coefficient does not apply.
type TensionKjValues struct {
	Internal    float64       `yaml:"internal" json:"internal" validate:"gte=0"`
	External    float64       `yaml:"external" json:"external" validate:"gte=0"`
	TopInternal float64       `yaml:"top_internal" json:"top_internal" validate:"gte=0"`
	TopExternal float64       `yaml:"top_external" json:"top_external" validate:"gte=0"`
	Base        OptionalFloat `yaml:"base" json:"base" validate:"omitempty,gte=0"`
}

// Rotation is a pair of rotation thresholds in radians.
type Rotation struct {
	Yielding float64 `yaml:"yielding" json:"yielding" validate:"gte=0"`
	Ultimate float64 `yaml:"ultimate" json:"ultimate" validate:"gte=0"`
}

type ElementSettings struct {
	MomentCurvature        MomentCurvatureMethod `yaml:"moment_curvature" json:"moment_curvature" validate:"member"`
	MomentShearInteraction bool                  `yaml:"moment_shear_interaction" json:"moment_shear_interaction"`
	ShearFormulation       ShearFormulation      `yaml:"shear_formulation" json:"shear_formulation" validate:"member"`
	DomainMN               DomainMNMethod        `yaml:"domain_mn" json:"domain_mn" validate:"member"`
}

type SubassemblySettings struct {
	Hierarchy SubHierarchy `yaml:"sub_hierarchy" json:"sub_hierarchy" validate:"member"`
	Stiffness SubStiffness `yaml:"sub_stiffness" json:"sub_stiffness" validate:"member"`
}

// enumerated is implemented by every closed set of literals in the document.
// Each literal selects a strategy implemented by the analysis engine.
type enumerated interface {
	Valid() bool
	Allowed() []string
}

type MomentCurvatureMethod string

const MomentCurvatureStressBlock MomentCurvatureMethod = "stress_block"

var momentCurvatureMethods = []MomentCurvatureMethod{MomentCurvatureStressBlock}

func (m MomentCurvatureMethod) Valid() bool       { return slices.Contains(momentCurvatureMethods, m) }
func (m MomentCurvatureMethod) Allowed() []string { return literals(momentCurvatureMethods) }

type ShearFormulation string

const ShearNZSEE2017 ShearFormulation = "NZSEE2017"

var shearFormulations = []ShearFormulation{ShearNZSEE2017}

func (s ShearFormulation) Valid() bool       { return slices.Contains(shearFormulations, s) }
func (s ShearFormulation) Allowed() []string { return literals(shearFormulations) }

type DomainMNMethod string

const DomainMNFourPoints DomainMNMethod = "four_points"

var domainMNMethods = []DomainMNMethod{DomainMNFourPoints}

func (d DomainMNMethod) Valid() bool       { return slices.Contains(domainMNMethods, d) }
func (d DomainMNMethod) Allowed() []string { return literals(domainMNMethods) }

// SubHierarchy selects how the capacities of paired elements in a
// subassembly are aggregated.
type SubHierarchy string

const (
	SubHierarchyLowest  SubHierarchy = "low"
	SubHierarchyAverage SubHierarchy = "avg"
	SubHierarchyTotal   SubHierarchy = "tot"
)

var subHierarchies = []SubHierarchy{SubHierarchyLowest, SubHierarchyAverage, SubHierarchyTotal}

func (h SubHierarchy) Valid() bool       { return slices.Contains(subHierarchies, h) }
func (h SubHierarchy) Allowed() []string { return literals(subHierarchies) }

// SubStiffness selects how the stiffness of a subassembly is picked from its
// elements.
type SubStiffness string

const (
	SubStiffnessLowest  SubStiffness = "low"
	SubStiffnessAverage SubStiffness = "avg"
)

var subStiffnesses = []SubStiffness{SubStiffnessLowest, SubStiffnessAverage}

func (s SubStiffness) Valid() bool       { return slices.Contains(subStiffnesses, s) }
func (s SubStiffness) Allowed() []string { return literals(subStiffnesses) }

func literals[T ~string](values []T) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = string(v)
	}
	return result
}
