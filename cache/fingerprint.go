package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/periodicity"
)

// Fingerprint returns the hex SHA-256 of the algorithm and the periodic
// structure of g. Equal fingerprints mean Compute reads identical input.
//
// Complexity: O(V + E).
func Fingerprint(g *core.Graph, alg periodicity.Algorithm) string {
	h := sha256.New()
	fmt.Fprintf(h, "alg %q\n", alg)
	for _, n := range g.Nodes() {
		fmt.Fprintf(h, "node %q %d\n", n.ID, n.ISite)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(h, "edge %q %q %d %d %d %d %d\n",
			e.From, e.To, e.Start, e.End, e.Delta[0], e.Delta[1], e.Delta[2])
	}

	return hex.EncodeToString(h.Sum(nil))
}
