package domain

import "errors"

// Every resolution error wraps one of these sentinels. All of them abort the
// whole batch; callers classify with errors.Is.
var (
	// ErrUnresolvableSchema reports a type/format combination the resolvers do not recognize.
	ErrUnresolvableSchema = errors.New("unresolvable schema")

	// ErrMissingDefinition reports a reference to a definition absent from the document.
	ErrMissingDefinition = errors.New("missing definition")

	// ErrDuplicateName reports two methods or two models resolving to the same name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidArgumentLocation reports a parameter location outside the accepted set.
	ErrInvalidArgumentLocation = errors.New("invalid argument location")

	// ErrMissingIdentity reports an identifying field that could not be derived.
	ErrMissingIdentity = errors.New("missing identity")
)
