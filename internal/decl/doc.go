// Package decl provides the legacy storage declaration model, its YAML and
// HCL front ends, and structural validation.
//
// A definition describes one legacy module: its name, whether it is
// instantiable, its visibility, and the ordered storage lines it declares.
// Storage lines carry a closed set of shapes (Simple, Map, DoubleMap) and
// optional genesis metadata.
//
// # Schema Overview
//
//	name: Balances
//	instantiable: true
//	visibility: pub
//	storage:
//	  - name: TotalIssuance
//	    type: T::Balance
//	    getter: total_issuance
//	    visibility: pub
//	    config: ""            # genesis field named after the getter (or storage name)
//	  - name: Account
//	    type: AccountData<T::Balance>
//	    kind: map
//	    hasher: blake2_128_concat
//	    key: T::AccountId
//	    default: AccountData::default()
//	  - name: Locks
//	    type: Vec<BalanceLock>
//	    kind: double_map
//	    hasher: twox_64_concat
//	    key: T::AccountId
//	    hasher2: identity
//	    key2: LockIdentifier
//	    option: true
//	extra_genesis:
//	  config:
//	    - name: balances
//	      type: Vec<(T::AccountId, T::Balance)>
//	      attrs: ['doc = "Initial balances."']
//	  build: "|config: &GenesisConfig<T>| { ... }"
//
// A bare `config:` (or `config: ~`) is read like `config: ""`.
//
// The same model can be written in HCL, see ParseHCL.
package decl
