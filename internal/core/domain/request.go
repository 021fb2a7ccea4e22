package domain

// Request is one unit of work for the pipeline: raw CSS, possibly containing
// bare placeholders, and the options it runs under.
type Request struct {
	CSS     string
	Options Options
}
