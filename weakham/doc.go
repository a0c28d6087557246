// Package weakham computes weak-Hamiltonian current-current contractions
// of the Eye topology class from four quark propagators: the "Saucer" (S)
// diagram, whose four-quark loop is connected, and the "Eye" (E) diagram,
// whose loop is traced off independently.
//
// 🚀 The contraction
//
//	These contractions are generated by the Q1 and Q2 operators in the
//	physical basis (see e.g. Fig 3 of arXiv:1507.03094):
//
//	     q4                 |
//	   /-<-¬                |
//	  /     \               |             q2           q3
//	  \     /               |        /----<------*------<----¬
//	   \   /                |       /          /-*-¬          \
//	    * *                 |      /          /     \          \
//	     H_W                |   i *           \     /  q4      * f
//	                        |      \           \->-/          /
//	      Saucer (S)        |       \                        /
//	                        |        \----------->----------/
//	                        |                   q1
//	                        |              Eye (E)
//
//	S: Σ_μ trace(q3·γ5·q1snk·adj(q2)·γ5·Γμ · q4·Γμ)
//	E: Σ_μ trace(q3·γ5·q1snk·adj(q2)·γ5·Γμ) · trace(q4·Γμ)
//
// q1 must be sink smeared: it enters through its sink-time slice only,
// broadcast to every spatial site. Γμ is the chiral insertion 2·P·γμ
// (left-handed by default). The per-site sums are projected to zero
// momentum, giving one correlator per diagram indexed by time.
//
// ✨ Engine guarantees
//
//   - Typed input resolution up front: unknown names or wrong
//     representations fail with ErrUnresolvedInput before any compute.
//   - The Eye body/loop fields are recycled traces of the Saucer
//     body/loop fields — the four-propagator product is built once per
//     direction, never twice.
//   - Per-direction builds fan out over an errgroup; reductions proceed
//     in a fixed site order per time slice, so repeated runs over the
//     same input reproduce identical correlators.
//   - Scratch fields come from an execution-scoped pool keyed by shape
//     and element type; nothing leaks between executions.
//   - Exactly two results, labels "HW_S" then "HW_E", are handed to the
//     writer in one call under the "HW_Eye" key — both diagrams complete
//     or nothing is emitted.
//
// ⚙️ Usage:
//
//	env, _ := weakham.NewMemEnvironment(geom)
//	env.AddSliced("q1", q1)
//	env.AddField("q2", q2) // likewise q3, q4
//
//	eng, _ := weakham.NewEngine(env, weakham.YAMLWriter{},
//		weakham.WithWorkers(4))
//	results, err := eng.Execute(ctx, weakham.Params{
//		Q1: "q1", Q2: "q2", Q3: "q3", Q4: "q4",
//		TSnk: 0, Output: "out/eye",
//	})
//
// See example_test.go for a complete runnable scenario.
package weakham
