package router

// Origin names what asked for a navigation.
type Origin string

const (
	OriginSearchInput Origin = "search_input"
	OriginLogo        Origin = "logo"
	OriginBack        Origin = "back"
	OriginStart       Origin = "start"
)

// NavigateMsg asks the application to push Target onto the history.
type NavigateMsg struct {
	Target string
	Origin Origin
}

// BackMsg asks the application to return to the previous history entry.
type BackMsg struct{}

// QueryResolvedMsg carries a query parameter resolved for the page mounted by
// navigation number Seq. Err is set when the parameter could not be decoded;
// Value is then empty.
type QueryResolvedMsg struct {
	Seq     uint64
	Param   string
	Value   string
	Present bool
	Err     error
}
