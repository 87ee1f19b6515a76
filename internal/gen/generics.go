package gen

// Generics holds the three generic parameter lists used across a template.
type Generics struct {
	// Decl follows the declaring item, e.g. `Config<I: 'static>`.
	Decl string
	// Impl follows `impl`, e.g. `impl<T: Config>`.
	Impl string
	// Use follows a bare type name, e.g. `Pallet<T>`.
	Use string

	instance bool
}

// NewGenerics derives the generic lists of a module once per run.
func NewGenerics(instantiable bool) Generics {
	if instantiable {
		return Generics{
			Decl: "<I: 'static>",
			Impl: "<T: Config<I>, I: 'static>",
			Use:  "<T, I>",

			instance: true,
		}
	}

	return Generics{
		Impl: "<T: Config>",
		Use:  "<T>",
	}
}

// phantom is the PhantomData argument of the pallet struct.
func (g Generics) phantom() string {
	if g.instance {
		return "(T, I)"
	}

	return "T"
}

// genesis returns the generic lists of the genesis config aggregate: the
// implementation lists when the aggregate is generic, nothing otherwise.
func (g Generics) genesis(isGeneric bool) Generics {
	if !isGeneric {
		return Generics{}
	}

	return Generics{Decl: g.Impl, Impl: g.Impl, Use: g.Use}
}
