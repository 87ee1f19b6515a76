// Package gen renders a legacy storage definition as a template of the
// attribute-based pallet syntax.
//
// Generation is best-effort and single-pass:
//   - Storage lines become `#[pallet::storage]` type aliases, each with an
//     inferred query kind and an optional `#[pallet::type_value]` default.
//   - Genesis-bearing lines become a `#[pallet::genesis_config]` struct, its
//     Default impl, and a `#[pallet::genesis_build]` impl.
//   - Everything else is a fixed skeleton of `TODO_*` placeholder markers.
//
// Constructs with no one-to-one mapping are rendered as placeholders and
// reported as warnings; only genesis derivation can abort a run.
package gen
