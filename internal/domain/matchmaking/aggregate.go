package matchmaking

import "sort"

// DemandSupply holds per card variant wishlist counts (demand) and
// trade/sell listing counts (supply). Unknown keys count as zero.
type DemandSupply struct {
	demand map[Key]int
	supply map[Key]int
}

// Aggregate groups the full wishlist and ownership sets into a DemandSupply index.
func Aggregate(wishlists []WishlistEntry, cards []UserCard) *DemandSupply {
	ds := &DemandSupply{
		demand: make(map[Key]int, len(wishlists)),
		supply: make(map[Key]int, len(cards)),
	}
	for _, w := range wishlists {
		ds.demand[w.Key]++
	}
	for _, c := range cards {
		if c.Status.Listed() {
			ds.supply[c.Key]++
		}
	}
	return ds
}

// NewDemandSupply builds an index from the store's grouped counts.
func NewDemandSupply(demand, supply map[Key]int) *DemandSupply {
	if demand == nil {
		demand = map[Key]int{}
	}
	if supply == nil {
		supply = map[Key]int{}
	}
	return &DemandSupply{demand: demand, supply: supply}
}

func (d *DemandSupply) Demand(k Key) int {
	if d == nil {
		return 0
	}
	return d.demand[k]
}

func (d *DemandSupply) Supply(k Key) int {
	if d == nil {
		return 0
	}
	return d.supply[k]
}

// Keys returns every key with non-zero demand or supply, ordered by card then variant.
func (d *DemandSupply) Keys() []Key {
	if d == nil {
		return nil
	}
	seen := make(map[Key]struct{}, len(d.demand)+len(d.supply))
	for k := range d.demand {
		seen[k] = struct{}{}
	}
	for k := range d.supply {
		seen[k] = struct{}{}
	}
	keys := make([]Key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].BaseCardID != keys[j].BaseCardID {
			return keys[i].BaseCardID < keys[j].BaseCardID
		}
		return keys[i].VariantID < keys[j].VariantID
	})
	return keys
}

// Ratio is demand divided by supply, with supply floored at one.
func (d *DemandSupply) Ratio(k Key) float64 {
	return demandSupplyRatio(d.Demand(k), d.Supply(k))
}

func demandSupplyRatio(demand, supply int) float64 {
	return float64(demand) / float64(max(supply, 1))
}
