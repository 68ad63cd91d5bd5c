package macrolens

// Period is a calendar sampling frequency for a series.
type Period int

const (
	Daily Period = iota
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	default:
		return "periodic"
	}
}
