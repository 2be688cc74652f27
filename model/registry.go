package model

import (
	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
)

// registerBuiltins wires every family implemented in package changestat into
// r. Each registration is a single call; there is no central switch mapping
// names to constructors, so adding a term family never touches the parser.
func registerBuiltins(r *Registry) {
	registerStructural(r)
	registerAlternating(r)
	registerFourCycles(r)
	registerBipartite(r)
	registerAttrs(r)
}

func registerStructural(r *Registry) {
	r.Register("EdgeCount", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 0); err != nil {
			return nil, err
		}

		return changestat.EdgeCount{}, nil
	})
	r.Register("Mutual", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 0); err != nil {
			return nil, err
		}

		return changestat.Mutual{}, nil
	})
	r.Register("Asymmetric", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 0); err != nil {
			return nil, err
		}

		return changestat.Asymmetric{}, nil
	})
	r.Register("Triangles", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 0); err != nil {
			return nil, err
		}

		return changestat.Triangles{}, nil
	})
	r.Register("KStar", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		k, err := argInt(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.KStar{K: k}, nil
	})
	r.Register("OutKStar", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		k, err := argInt(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.OutKStar{K: k}, nil
	})
	r.Register("InKStar", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		k, err := argInt(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.InKStar{K: k}, nil
	})
	r.Register("KTwoPath", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		k, err := argInt(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.KTwoPath{K: k}, nil
	})
}

func registerAlternating(r *Registry) {
	r.Register("AltKStars", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		lambda, err := argFloat(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.AltKStars{Lambda: lambda}, nil
	})
	r.Register("AltOutStars", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		lambda, err := argFloat(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.AltOutStars{Lambda: lambda}, nil
	})
	r.Register("AltInStars", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		lambda, err := argFloat(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.AltInStars{Lambda: lambda}, nil
	})
	r.Register("AltKTriangles", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		lambda, err := argFloat(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.AltKTriangles{Lambda: lambda}, nil
	})
	r.Register("AltKTwoPaths", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		lambda, err := argFloat(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.AltKTwoPaths{Lambda: lambda}, nil
	})
}

func registerFourCycles(r *Registry) {
	r.Register("FourCycles", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 0); err != nil {
			return nil, err
		}

		return changestat.FourCycles{}, nil
	})
	r.Register("FourCyclesNodePower", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 1); err != nil {
			return nil, err
		}
		power, err := argFloat(args, 0)
		if err != nil {
			return nil, err
		}

		return changestat.FourCyclesNodePower{Power: power}, nil
	})
}

func registerBipartite(r *Registry) {
	r.Register("BipartiteExactlyOneNeighbourA", changestat.KindStructural, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 0); err != nil {
			return nil, err
		}

		return changestat.BipartiteExactlyOneNeighbourA{}, nil
	})
	r.Register("NodematchAlpha", changestat.KindCategoricalAttr, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 2); err != nil {
			return nil, err
		}
		if err := requireAttribute(g, args[0]); err != nil {
			return nil, err
		}
		alpha, err := argFloat(args, 1)
		if err != nil {
			return nil, err
		}

		return changestat.NodematchAlpha{Attr: args[0], Alpha: alpha}, nil
	})
	r.Register("NodematchBeta", changestat.KindCategoricalAttr, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 2); err != nil {
			return nil, err
		}
		if err := requireAttribute(g, args[0]); err != nil {
			return nil, err
		}
		beta, err := argFloat(args, 1)
		if err != nil {
			return nil, err
		}

		return changestat.NodematchBeta{Attr: args[0], Beta: beta}, nil
	})
}

func registerAttrs(r *Registry) {
	binaryTerm := func(ctor func(attr string) changestat.Statistic) TermBuilder {
		return func(g *graph.Graph, args []string) (changestat.Statistic, error) {
			if err := requireArgs(args, 1); err != nil {
				return nil, err
			}
			if err := requireAttribute(g, args[0]); err != nil {
				return nil, err
			}

			return ctor(args[0]), nil
		}
	}

	r.Register("Activity", changestat.KindBinaryAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.Activity{Attr: a} }))
	r.Register("Interaction", changestat.KindBinaryAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.Interaction{Attr: a} }))
	r.Register("SenderBinary", changestat.KindBinaryAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.SenderBinary{Attr: a} }))
	r.Register("ReceiverBinary", changestat.KindBinaryAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.ReceiverBinary{Attr: a} }))

	r.Register("Match", changestat.KindCategoricalAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.Match{Attr: a} }))
	r.Register("Mismatch", changestat.KindCategoricalAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.Mismatch{Attr: a} }))

	r.Register("SenderCategorical", changestat.KindCategoricalAttr, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 2); err != nil {
			return nil, err
		}
		if err := requireAttribute(g, args[0]); err != nil {
			return nil, err
		}
		value, err := argInt(args, 1)
		if err != nil {
			return nil, err
		}

		return changestat.SenderCategorical{Attr: args[0], Value: int64(value)}, nil
	})
	r.Register("ReceiverCategorical", changestat.KindCategoricalAttr, func(g *graph.Graph, args []string) (changestat.Statistic, error) {
		if err := requireArgs(args, 2); err != nil {
			return nil, err
		}
		if err := requireAttribute(g, args[0]); err != nil {
			return nil, err
		}
		value, err := argInt(args, 1)
		if err != nil {
			return nil, err
		}

		return changestat.ReceiverCategorical{Attr: args[0], Value: int64(value)}, nil
	})

	r.Register("Sum", changestat.KindContinuousAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.Sum{Attr: a} }))
	r.Register("Diff", changestat.KindContinuousAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.Diff{Attr: a} }))
	r.Register("SenderContinuous", changestat.KindContinuousAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.SenderContinuous{Attr: a} }))
	r.Register("ReceiverContinuous", changestat.KindContinuousAttr, binaryTerm(func(a string) changestat.Statistic { return changestat.ReceiverContinuous{Attr: a} }))
}
