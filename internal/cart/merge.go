package cart

// DroppedLine reports a line that could not survive a merge, usually because
// its product was delisted while the cart sat idle. Drops are warnings, never
// errors: a stale entry must not block login or checkout.
type DroppedLine struct {
	Key    LineKey
	Reason string
}

// ResolveFunc reports whether a product selection still resolves in the
// catalog, and returns the current product data for the surviving line.
type ResolveFunc func(key LineKey) (ProductRef, bool)

// Merge reconciles a locally-held (pre-login) cart with the account's
// server-held cart. For a key present in both, the merged quantity is the
// larger of the two, not the sum: a re-run of login on the same browser tab
// must not double quantities. This mirrors the storefront's long-standing
// behavior; whether the lower quantity should instead be summed is a product
// decision, deliberately not taken here.
//
// Merge is idempotent: merging the result with the same remote cart again
// yields the same cart. Remote line order is kept first, local-only lines
// are appended in their local order.
func Merge(local, remote Cart, resolve ResolveFunc) (Cart, []DroppedLine) {
	var dropped []DroppedLine

	keep := func(l Line) (Line, bool) {
		ref, ok := resolve(l.Key())
		if !ok {
			dropped = append(dropped, DroppedLine{Key: l.Key(), Reason: "product no longer available"})
			return Line{}, false
		}
		l.Product = ref
		return l, true
	}

	localQty := make(map[LineKey]int, len(local.Lines))
	for _, l := range local.Lines {
		localQty[l.Key()] = l.Quantity
	}

	out := Cart{}
	seen := make(map[LineKey]bool, len(remote.Lines))

	for _, l := range remote.Lines {
		key := l.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		merged, ok := keep(l)
		if !ok {
			continue
		}
		if q, exists := localQty[key]; exists && q > merged.Quantity {
			merged.Quantity = q
		}
		out.Lines = append(out.Lines, merged)
	}

	for _, l := range local.Lines {
		key := l.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		merged, ok := keep(l)
		if !ok {
			continue
		}
		out.Lines = append(out.Lines, merged)
	}

	return out, dropped
}
