package parameters

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gopkg.in/yaml.v3"
)

// genConfig generates configurations satisfying every invariant.
func genConfig() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOfN(12, gen.Float64Range(0, 1)),
		gen.Bool(),
		gen.Bool(),
		gen.OneConstOf(SubHierarchyLowest, SubHierarchyAverage, SubHierarchyTotal),
		gen.OneConstOf(SubStiffnessLowest, SubStiffnessAverage),
	).Map(func(values []interface{}) Config {
		v := values[0].([]float64)
		cfg := Config{
			Nodes: NodeParameters{
				TensionKj: TensionKjValues{
					Internal:    v[0],
					External:    v[1],
					TopInternal: v[2],
					TopExternal: v[3],
				},
				CompressionKj:    v[5],
				ExternalRotation: Rotation{Yielding: v[6], Ultimate: v[6] + v[7]},
				InternalRotation: Rotation{Yielding: v[8], Ultimate: v[8] + v[9]},
			},
			Elements: ElementSettings{
				MomentCurvature:        MomentCurvatureStressBlock,
				MomentShearInteraction: values[2].(bool),
				ShearFormulation:       ShearNZSEE2017,
				DomainMN:               DomainMNFourPoints,
			},
			Subassembly: SubassemblySettings{
				Hierarchy: values[3].(SubHierarchy),
				Stiffness: values[4].(SubStiffness),
			},
		}
		if values[1].(bool) {
			cfg.Nodes.TensionKj.Base = Some(v[4])
		}
		cfg.Nodes.CrackingRotation = min(v[6], v[8]) * v[10]
		return cfg
	})
}

func negate(cfg Config, field int, magnitude float64) Config {
	n := &cfg.Nodes
	switch field {
	case 0:
		n.TensionKj.Internal = -magnitude
	case 1:
		n.TensionKj.External = -magnitude
	case 2:
		n.TensionKj.TopInternal = -magnitude
	case 3:
		n.TensionKj.TopExternal = -magnitude
	case 4:
		n.TensionKj.Base = Some(-magnitude)
	case 5:
		n.CompressionKj = -magnitude
	case 6:
		n.ExternalRotation.Yielding = -magnitude
	case 7:
		n.ExternalRotation.Ultimate = -magnitude
	case 8:
		n.InternalRotation.Yielding = -magnitude
	case 9:
		n.InternalRotation.Ultimate = -magnitude
	default:
		n.CrackingRotation = -magnitude
	}
	return cfg
}

func TestProperty_RoundTripFidelity(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	props := gopter.NewProperties(params)

	props.Property("valid documents load with the exact source values", prop.ForAll(func(cfg Config) bool {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return false
		}
		got, err := Parse(data)
		return err == nil && reflect.DeepEqual(cfg, *got)
	}, genConfig()))

	props.TestingRun(t)
}

func TestProperty_NegativeValuesAreRejected(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	props := gopter.NewProperties(params)

	props.Property("a negative capacity or rotation is a range invariant error", prop.ForAll(func(cfg Config, field int, magnitude float64) bool {
		data, err := yaml.Marshal(negate(cfg, field, magnitude))
		if err != nil {
			return false
		}
		_, err = Parse(data)
		return errors.Is(err, ErrRangeInvariant)
	}, genConfig(), gen.IntRange(0, 10), gen.Float64Range(0.0001, 10)))

	props.TestingRun(t)
}

func TestProperty_UndeclaredLiteralsAreRejected(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	props := gopter.NewProperties(params)

	props.Property("an undeclared enum literal is an enum membership error", prop.ForAll(func(cfg Config, field int, literal string) bool {
		literal = "x_" + literal
		switch field {
		case 0:
			cfg.Elements.MomentCurvature = MomentCurvatureMethod(literal)
		case 1:
			cfg.Elements.ShearFormulation = ShearFormulation(literal)
		case 2:
			cfg.Elements.DomainMN = DomainMNMethod(literal)
		case 3:
			cfg.Subassembly.Hierarchy = SubHierarchy(literal)
		default:
			cfg.Subassembly.Stiffness = SubStiffness(literal)
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return false
		}
		_, err = Parse(data)
		return errors.Is(err, ErrEnumMembership)
	}, genConfig(), gen.IntRange(0, 4), gen.Identifier()))

	props.TestingRun(t)
}
