package costing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sum adds values left to right
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// LineCost is area multiplied by the sum of the per-unit cost components.
func (c *Calculator) LineCost(area decimal.Decimal, components ...decimal.Decimal) decimal.Decimal {
	return c.roundMoney(area.Mul(Sum(components...)))
}

// Measure is one measured piece inside a block
type Measure struct {
	L    decimal.Decimal  `json:"l"`
	B    decimal.Decimal  `json:"b"`
	H    decimal.Decimal  `json:"h"`
	Rate *decimal.Decimal `json:"rate,omitempty"`
	Area decimal.Decimal  `json:"area"`
	Cost decimal.Decimal  `json:"cost"`
}

// Dimensions returns the measure's l, b and h
func (m Measure) Dimensions() Dimensions {
	return Dimensions{L: m.L, B: m.B, H: m.H}
}

// Block is a labelled list of measures inside a group
type Block struct {
	Label    string    `json:"label,omitempty"`
	Measures []Measure `json:"measures"`
}

// Group is a delivery of blocks sharing hydra and truck charges
type Group struct {
	HydraCost      decimal.Decimal `json:"hydra_cost"`
	TruckCost      decimal.Decimal `json:"truck_cost"`
	Date           *time.Time      `json:"date,omitempty"`
	Blocks         []Block         `json:"blocks"`
	TotalBlockArea decimal.Decimal `json:"total_block_area"`
	TotalBlockCost decimal.Decimal `json:"total_block_cost"`
}

// NormalizeGroups returns a copy of gs with every raw input rounded to InputScale.
// Derived values are left for RollUpGroups to overwrite. A nil list becomes empty.
func NormalizeGroups(gs []Group) []Group {
	out := make([]Group, len(gs))
	for i, g := range gs {
		g.HydraCost = RoundInput(g.HydraCost)
		g.TruckCost = RoundInput(g.TruckCost)
		blocks := make([]Block, len(g.Blocks))
		for j, b := range g.Blocks {
			measures := make([]Measure, len(b.Measures))
			for k, m := range b.Measures {
				m.L, m.B, m.H = RoundInput(m.L), RoundInput(m.B), RoundInput(m.H)
				if m.Rate != nil {
					rate := RoundInput(*m.Rate)
					m.Rate = &rate
				}
				measures[k] = m
			}
			b.Measures = measures
			blocks[j] = b
		}
		g.Blocks = blocks
		out[i] = g
	}
	return out
}

// RollUpGroup recomputes the area and cost of every measure in g and the group totals.
// Each measure costs area × (group hydra + group truck + materialCost).
func (c *Calculator) RollUpGroup(g *Group, v Variant, materialCost decimal.Decimal) {
	area, cost := decimal.Zero, decimal.Zero
	for i := range g.Blocks {
		for j := range g.Blocks[i].Measures {
			m := &g.Blocks[i].Measures[j]
			m.Area = c.Area(v, m.Dimensions())
			m.Cost = c.LineCost(m.Area, g.HydraCost, g.TruckCost, materialCost)
			area = area.Add(m.Area)
			cost = cost.Add(m.Cost)
		}
	}
	g.TotalBlockArea = area
	g.TotalBlockCost = cost
}

// RollUpGroups rolls up every group in place and returns the summed area and cost.
func (c *Calculator) RollUpGroups(gs []Group, v Variant, materialCost decimal.Decimal) (area, cost decimal.Decimal) {
	area, cost = decimal.Zero, decimal.Zero
	for i := range gs {
		c.RollUpGroup(&gs[i], v, materialCost)
		area = area.Add(gs[i].TotalBlockArea)
		cost = cost.Add(gs[i].TotalBlockCost)
	}
	return area, cost
}

// BoardCost is area × rate / 144, pricing a raw volume by the board-foot rate.
func (c *Calculator) BoardCost(area, rate decimal.Decimal) decimal.Decimal {
	return c.roundMoney(area.Mul(rate).Div(boardDivisor))
}

// Total sums money amounts and rounds the result
func (c *Calculator) Total(values ...decimal.Decimal) decimal.Decimal {
	return c.roundMoney(Sum(values...))
}

// Amount multiplies the factors and rounds the product as money.
func (c *Calculator) Amount(factors ...decimal.Decimal) decimal.Decimal {
	if len(factors) == 0 {
		return decimal.Zero
	}
	product := decimal.NewFromInt(1)
	for _, f := range factors {
		product = product.Mul(f)
	}
	return c.roundMoney(product)
}
