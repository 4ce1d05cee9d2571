package lambdaroute

// Discriminator is a structural predicate over a raw record. The
// recognizer list evaluates discriminators before any decoding happens,
// so they must stay cheap: field existence and string equality, no
// allocation.
type Discriminator interface {
	Match(v View) bool
}

// DiscriminatorFunc adapts a plain function to the Discriminator
// interface.
type DiscriminatorFunc func(v View) bool

// Match calls f.
func (f DiscriminatorFunc) Match(v View) bool { return f(v) }

// HasFields matches records in which every given path exists. A single
// path is the common case: HasFields("direct_invocation").
func HasFields(paths ...string) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		for _, p := range paths {
			if !v.HasField(p) {
				return false
			}
		}
		return true
	})
}

// FieldEquals matches records whose path holds exactly the given string,
// e.g. FieldEquals("source", "aws.events").
func FieldEquals(path, value string) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		s, ok := v.GetString(path)
		return ok && s == value
	})
}

// And matches when every discriminator matches.
func And(ds ...Discriminator) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		for _, d := range ds {
			if !d.Match(v) {
				return false
			}
		}
		return true
	})
}

// Or matches when at least one discriminator matches.
func Or(ds ...Discriminator) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		for _, d := range ds {
			if d.Match(v) {
				return true
			}
		}
		return false
	})
}
