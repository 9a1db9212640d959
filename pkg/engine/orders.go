package engine

import (
	"hash/fnv"
	"math/rand/v2"
	"slices"
)

// generateOrders builds a participant's starting order list: count single
// shape tags drawn from the specialties present in the session, excluding
// the participant's own so that fulfilment requires trade.
//
// The draw is seeded from (specialty, session id), so regenerating for the
// same participant in the same session yields the same list no matter when
// it runs. Returns nil when no other specialty exists to draw from.
func generateOrders(specialty, sessionID string, count int, specialtiesInSession []string) []string {
	pool := make([]string, 0, len(specialtiesInSession))
	for _, s := range specialtiesInSession {
		if s != "" && s != specialty && !slices.Contains(pool, s) {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	slices.Sort(pool)

	rng := rand.New(rand.NewPCG(orderSeed(specialty, sessionID), uint64(count)))
	orders := make([]string, count)
	for i := range orders {
		orders[i] = pool[rng.IntN(len(pool))]
	}
	return orders
}

func orderSeed(specialty, sessionID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(specialty))
	h.Write([]byte{0})
	h.Write([]byte(sessionID))
	return h.Sum64()
}
