package wikimark

// Sink receives styled tokens in document order.
type Sink interface {
	WriteToken(Token) error
	Flush() error
}
