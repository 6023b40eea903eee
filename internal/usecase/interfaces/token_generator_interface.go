package interfaces

// ITokenGenerator produces unguessable correlation tokens. Implementations must
// be safe for concurrent use.
type ITokenGenerator interface {
	Generate() (string, error)
}
