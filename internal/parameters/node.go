package parameters

// NodeType is the position category of a beam-column joint in a frame.
type NodeType string

const (
	NodeInternal    NodeType = "internal"
	NodeExternal    NodeType = "external"
	NodeTopInternal NodeType = "top_internal"
	NodeTopExternal NodeType = "top_external"
	NodeBase        NodeType = "base"
)

// Adjacency describes which members frame into a joint.
type Adjacency struct {
	BelowColumn bool
	AboveColumn bool
	LeftBeam    bool
	RightBeam   bool
}

// ClassifyNode derives the node category from the members around it.
func ClassifyNode(a Adjacency) NodeType {
	switch {
	case !a.BelowColumn:
		return NodeBase
	case !a.AboveColumn:
		if !a.LeftBeam || !a.RightBeam {
			return NodeTopExternal
		}
		return NodeTopInternal
	case !a.LeftBeam || !a.RightBeam:
		return NodeExternal
	}
	return NodeInternal
}

// For returns the tension coefficient of a node category. The second value
// is false when the coefficient does not apply, which is the case for a
// null base value.
func (t TensionKjValues) For(nodeType NodeType) (float64, bool) {
	switch nodeType {
	case NodeInternal:
		return t.Internal, true
	case NodeExternal:
		return t.External, true
	case NodeTopInternal:
		return t.TopInternal, true
	case NodeTopExternal:
		return t.TopExternal, true
	case NodeBase:
		return t.Base.Get()
	}
	return 0, false
}

// RotationCapacity returns the yielding and ultimate rotations governing a
// joint of the given category.
func (n NodeParameters) RotationCapacity(nodeType NodeType) Rotation {
	if nodeType == NodeExternal || nodeType == NodeTopExternal {
		return n.ExternalRotation
	}
	return n.InternalRotation
}

// CompressionKjFor returns the compression coefficient, which only governs
// internal joints.
func (n NodeParameters) CompressionKjFor(nodeType NodeType) (float64, bool) {
	if nodeType != NodeInternal {
		return 0, false
	}
	return n.CompressionKj, true
}
