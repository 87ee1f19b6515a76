package decl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
name: Balances
instantiable: true
visibility: pub
storage:
  - name: TotalIssuance
    type: T::Balance
    getter: total_issuance
    visibility: pub
    config: ""
    docs:
      - The total units issued in the system.
  - name: Account
    type: AccountData<T::Balance>
    kind: map
    hasher: blake2_128_concat
    key: T::AccountId
    default: AccountData::default()
  - name: Locks
    type: Vec<BalanceLock>
    kind: double_map
    hasher: Twox64Concat
    key: T::AccountId
    hasher2: identity
    key2: LockIdentifier
    option: true
    visibility: pub(crate)
extra_genesis:
  config:
    - name: balances
      type: Vec<(T::AccountId, T::Balance)>
      attrs: ['doc = "Initial balances."']
  build: "|config: &GenesisConfig<T>| {}"
`

	def, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, def)

	assert.Equal(t, "Balances", def.Name)
	assert.True(t, def.Instantiable)
	assert.Equal(t, VisibilityPublic, def.Visibility.Kind)
	require.Len(t, def.StorageLines, 3)

	total := def.StorageLines[0]
	assert.Equal(t, "TotalIssuance", total.Name)
	assert.Equal(t, "T::Balance", total.ValueType)
	assert.Equal(t, "total_issuance", total.Getter)
	assert.Equal(t, Simple{}, total.Shape)
	require.NotNil(t, total.Config)
	assert.Empty(t, *total.Config)
	assert.Equal(t, []string{"The total units issued in the system."}, total.Docs)
	assert.False(t, total.IsOption)

	account := def.StorageLines[1]
	assert.Equal(t, Map{Hasher: HasherBlake2_128Concat, Key: "T::AccountId"}, account.Shape)
	assert.True(t, account.HasDefault())
	assert.Nil(t, account.Config)

	locks := def.StorageLines[2]
	assert.Equal(t, DoubleMap{
		Hasher1: HasherTwox64Concat,
		Key1:    "T::AccountId",
		Hasher2: HasherIdentity,
		Key2:    "LockIdentifier",
	}, locks.Shape)
	assert.True(t, locks.IsOption)
	assert.Equal(t, Visibility{Kind: VisibilityRestricted, Path: "pub(crate)"}, locks.Visibility)

	require.Len(t, def.ExtraGenesis.Config, 1)
	assert.Equal(t, "balances", def.ExtraGenesis.Config[0].Name)
	assert.Equal(t, []string{`doc = "Initial balances."`}, def.ExtraGenesis.Config[0].Attrs)
	assert.NotEmpty(t, def.ExtraGenesis.Build)
}

func TestParse_DefaultsToInheritedSimple(t *testing.T) {
	def, err := Parse([]byte(`
name: Counter
storage:
  - name: Count
    type: u32
`))
	require.NoError(t, err)
	require.Len(t, def.StorageLines, 1)

	assert.False(t, def.Instantiable)
	assert.Equal(t, VisibilityInherited, def.Visibility.Kind)
	assert.Equal(t, Simple{}, def.StorageLines[0].Shape)
	assert.True(t, def.ExtraGenesis.IsEmpty())
}

func TestParse_NullConfigJoinsGenesis(t *testing.T) {
	def, err := Parse([]byte(`
name: Counter
storage:
  - name: Count
    type: u32
    config:
  - name: Total
    type: u32
    config: ~
  - name: Other
    type: u32
`))
	require.NoError(t, err)
	require.Len(t, def.StorageLines, 3)

	for _, line := range def.StorageLines[:2] {
		require.NotNil(t, line.Config, line.Name)
		assert.Empty(t, *line.Config, line.Name)
		assert.True(t, line.HasGenesis(), line.Name)
	}

	assert.Nil(t, def.StorageLines[2].Config)
	assert.Equal(t, "count", GenesisFieldName(&def.StorageLines[0]))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "unknown hasher with suggestion",
			yaml: `
name: M
storage:
  - name: A
    type: u32
    kind: map
    hasher: blake2_128_concta
    key: u32
`,
			wantErr: "did you mean Blake2_128Concat",
		},
		{
			name: "map without hasher",
			yaml: `
name: M
storage:
  - name: A
    type: u32
    kind: map
    key: u32
`,
			wantErr: "missing hasher",
		},
		{
			name: "unknown kind",
			yaml: `
name: M
storage:
  - name: A
    type: u32
    kind: tree
`,
			wantErr: `unknown storage kind "tree"`,
		},
		{
			name: "value with key",
			yaml: `
name: M
storage:
  - name: A
    type: u32
    key: u32
`,
			wantErr: "takes no key",
		},
		{
			name:    "invalid yaml",
			yaml:    "name: [",
			wantErr: "failed to parse definition YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseHasher(t *testing.T) {
	for _, h := range Hashers() {
		got, err := ParseHasher(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	legacy := map[string]Hasher{
		"blake2_128":        HasherBlake2_128,
		"blake2_256":        HasherBlake2_256,
		"blake2_128_concat": HasherBlake2_128Concat,
		"twox_128":          HasherTwox128,
		"twox_256":          HasherTwox256,
		"twox_64_concat":    HasherTwox64Concat,
		"identity":          HasherIdentity,
	}
	for in, want := range legacy {
		got, err := ParseHasher(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseHasher("sha256")
	require.ErrorIs(t, err, ErrUnknownHasher)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestMarshal_RoundTripsShapes(t *testing.T) {
	cfg := ""
	def := &Definition{
		Name: "Assets",
		StorageLines: []StorageLine{
			{Name: "Next", ValueType: "u32", Shape: Simple{}, Config: &cfg},
			{Name: "Asset", ValueType: "Details", Shape: Map{Hasher: HasherIdentity, Key: "u32"}},
			{Name: "Approval", ValueType: "u64", Shape: DoubleMap{
				Hasher1: HasherTwox64Concat, Key1: "A", Hasher2: HasherBlake2_256, Key2: "B",
			}},
		},
	}

	data, err := Marshal(def)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, def.StorageLines, back.StorageLines)
}

func TestLoadFile_InfersFormat(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "counter.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: Counter\n"), 0o644))

	hclPath := filepath.Join(dir, "counter.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(`module "Counter" {}`), 0o644))

	for _, path := range []string{yamlPath, hclPath} {
		def, err := LoadFile(path, "")
		require.NoError(t, err, path)
		assert.Equal(t, "Counter", def.Name)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition file")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("hcl")
	require.NoError(t, err)
	assert.Equal(t, FormatHCL, f)

	_, err = ParseFormat("toml")
	require.Error(t, err)
}
