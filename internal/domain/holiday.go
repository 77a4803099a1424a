package domain

// Holiday is one non-working calendar day. Date is an ISO date string
// (YYYY-MM-DD), which is also the deduplication key in the store.
type Holiday struct {
	Date string
	Name string
}
