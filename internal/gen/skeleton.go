package gen

import "text/template"

// skeletonData holds everything substituted into the pallet skeleton.
type skeletonData struct {
	ModuleName    string
	SupportCrate  string
	SystemCrate   string
	Generics      Generics
	Phantom       string
	StoreVis      string
	Storages      string
	GenesisConfig string
	GenesisBuild  string
}

var skeletonTemplate = template.Must(template.New("pallet").Parse(`
// Template for pallet upgrade for {{.ModuleName}}

pub use pallet::*;

#[{{.SupportCrate}}::pallet]
pub mod pallet {
	pub use {{.SupportCrate}}::pallet_prelude::*;
	pub use {{.SystemCrate}}::pallet_prelude::*;
	use super::*;

	#[pallet::config]
	pub trait Config{{.Generics.Decl}}: {{.SystemCrate}}::Config
		// TODO_MAYBE_ADDITIONAL_BOUNDS_AND_WHERE_CLAUSE
	{
		// TODO_ASSOCIATED_TYPE_AND_CONSTANTS
	}

	#[pallet::pallet]
	#[pallet::generate_store({{.StoreVis}} trait Store)]
	pub struct Pallet{{.Generics.Use}}(PhantomData<{{.Phantom}}>);

	#[pallet::interface]
	impl{{.Generics.Impl}} Interface for Pallet{{.Generics.Use}}
		// TODO_MAYBE_WHERE_CLAUSE
	{
		// TODO_ON_FINALIZE
		// TODO_ON_INITIALIZE
		// TODO_ON_RUNTIME_UPGRADE
		// TODO_INTEGRITY_TEST
		// TODO_OFFCHAIN_WORKER
	}

	#[pallet::call]
	impl{{.Generics.Impl}} Pallet{{.Generics.Use}}
		// TODO_MAYBE_WHERE_CLAUSE
	{
		// TODO_UPGRADE_DISPATCHABLES
	}

	#[pallet::inherent]
	// TODO_INHERENT

	#[pallet::event]
	// TODO_EVENT

	#[pallet::error]
	// TODO_ERROR

	#[pallet::origin]
	// TODO_ORIGIN

	#[pallet::validate_unsigned]
	// TODO_VALIDATE_UNSIGNED
{{if .Storages}}
{{.Storages}}{{end}}{{if .GenesisConfig}}
{{.GenesisConfig}}{{end}}{{if .GenesisBuild}}
{{.GenesisBuild}}{{end}}}
`))
