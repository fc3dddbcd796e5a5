// Package metrics derives the dashboard business metrics from the entity
// store: all-time totals, month-over-month trend deltas, and the low-stock
// alert list. Derive is a pure function of its inputs so it can be
// recomputed on demand after every store change.
package metrics

import (
	"math/big"
	"time"

	"github.com/velorashop/backoffice/internal/domain"
)

// Snapshot holds the derived dashboard figures. Each total is all-time;
// each change percentage compares the current calendar month against the
// immediately preceding one.
type Snapshot struct {
	TotalSales         domain.Money     `json:"totalSales"`
	SalesChangePct     int              `json:"salesChangePercent"`
	TotalOrders        int              `json:"totalOrders"`
	OrdersChangePct    int              `json:"ordersChangePercent"`
	ActiveProducts     int              `json:"activeProducts"`
	ProductsChangePct  int              `json:"productsChangePercent"`
	TotalCustomers     int              `json:"totalCustomers"`
	CustomersChangePct int              `json:"customersChangePercent"`
	LowStock           []domain.Product `json:"lowStock"`
}

// window is a half-open interval [start, end)
type window struct {
	start time.Time
	end   time.Time
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

// monthWindows returns the current-month window [month start, now] and the
// previous full calendar month, both in UTC. Calendar-exact, not a rolling
// 30 days.
func monthWindows(now time.Time) (cur, prev window) {
	now = now.UTC()
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := curStart.AddDate(0, -1, 0)
	// current window closes just past now so contains() includes now itself
	return window{start: curStart, end: now.Add(time.Nanosecond)},
		window{start: prevStart, end: curStart}
}

// Derive computes the dashboard snapshot from a point-in-time copy of the
// order and product collections. Orders count toward sales only when paid
// and payment-completed; anonymous orders never count as customers.
func Derive(orders []domain.Order, products []domain.Product, now time.Time) Snapshot {
	cur, prev := monthWindows(now)

	var snap Snapshot
	snap.TotalOrders = len(orders)

	totalSales := domain.Money{}
	curSales := domain.Money{}
	prevSales := domain.Money{}
	var curOrders, prevOrders int
	allCustomers := make(map[string]struct{})
	curCustomers := make(map[string]struct{})
	prevCustomers := make(map[string]struct{})

	for i := range orders {
		o := &orders[i]
		created := o.CreatedAt.UTC()
		inCur := cur.contains(created)
		inPrev := prev.contains(created)

		if inCur {
			curOrders++
		} else if inPrev {
			prevOrders++
		}

		if o.IsCompleted() {
			totalSales = totalSales.Add(o.TotalAmount)
			if inCur {
				curSales = curSales.Add(o.TotalAmount)
			} else if inPrev {
				prevSales = prevSales.Add(o.TotalAmount)
			}
		}

		if o.UserID != "" {
			allCustomers[o.UserID] = struct{}{}
			if inCur {
				curCustomers[o.UserID] = struct{}{}
			} else if inPrev {
				prevCustomers[o.UserID] = struct{}{}
			}
		}
	}

	var curActive, prevActive int
	lowStock := make([]domain.Product, 0)
	for i := range products {
		p := &products[i]
		if p.Status == domain.ProductStatusActive {
			snap.ActiveProducts++
			created := p.CreatedAt.UTC()
			if cur.contains(created) {
				curActive++
			} else if prev.contains(created) {
				prevActive++
			}
		}
		if p.IsLowStock() {
			lowStock = append(lowStock, *p)
		}
	}

	snap.TotalSales = totalSales
	snap.SalesChangePct = changePercentRat(curSales.Rat(), prevSales.Rat())
	snap.OrdersChangePct = changePercent(curOrders, prevOrders)
	snap.ProductsChangePct = changePercent(curActive, prevActive)
	snap.TotalCustomers = len(allCustomers)
	snap.CustomersChangePct = changePercent(len(curCustomers), len(prevCustomers))
	snap.LowStock = lowStock
	return snap
}

// changePercent applies the period-over-period delta rule to counts. An
// empty previous period is reported as +100, so a zero-to-anything
// transition never divides by zero.
func changePercent(cur, prev int) int {
	return changePercentRat(big.NewRat(int64(cur), 1), big.NewRat(int64(prev), 1))
}

// changePercentRat is the exact-arithmetic delta: round(((cur-prev)/prev)*100),
// rounded half away from zero. The same rule serves all four metrics.
func changePercentRat(cur, prev *big.Rat) int {
	if prev.Sign() <= 0 {
		return 100
	}
	delta := new(big.Rat).Sub(cur, prev)
	delta.Quo(delta, prev)
	delta.Mul(delta, big.NewRat(100, 1))
	return roundHalfAway(delta)
}

// roundHalfAway rounds a rational to the nearest integer, ties away from
// zero: round(|p|/q) = floor((2|p| + q) / 2q), sign restored after.
func roundHalfAway(r *big.Rat) int {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom() // always positive

	num.Mul(num, big.NewInt(2))
	num.Add(num, den)
	num.Quo(num, new(big.Int).Mul(den, big.NewInt(2)))

	if r.Sign() < 0 {
		num.Neg(num)
	}
	return int(num.Int64())
}
