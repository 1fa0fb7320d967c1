package argspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptySpec() *Spec {
	spec, _ := NewSpec("sub")
	return spec
}

func TestNewSpec_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		configs []ConfigureSpecFunc
		wantIn  string
	}{
		{
			"positional index gap",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("src", 0)),
				WithPositional(NewPositional("dst", 2)),
			},
			"gap",
		},
		{
			"duplicate positional index",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("src", 0)),
				WithPositional(NewPositional("dst", 0)),
			},
			"share index",
		},
		{
			"negative positional index",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("src", -1)),
			},
			"negative",
		},
		{
			"rest not last",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("files", 0, AsRest())),
				WithPositional(NewPositional("dst", 1)),
			},
			"must be last",
		},
		{
			"two collectors",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("a", 0, AsRest())),
				WithPositional(NewPositional("b", 1, AsRest())),
			},
			"",
		},
		{
			"rest and raw on one positional",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("x", 0, AsRest(), AsRaw())),
			},
			"both rest and raw",
		},
		{
			"raw alongside subcommands",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("x", 0, AsRaw())),
				WithCommand(NewCommand("build", WithCommandSpecFunc(emptySpec))),
			},
			"",
		},
		{
			"duplicate option name",
			[]ConfigureSpecFunc{
				WithOption(NewOption("output")),
				WithOption(NewOption("output")),
			},
			"duplicate name",
		},
		{
			"duplicate short flag",
			[]ConfigureSpecFunc{
				WithOption(NewOption("output", WithShortFlag("o"))),
				WithOption(NewOption("other", WithShortFlag("o"))),
			},
			"already used",
		},
		{
			"multi character short flag",
			[]ConfigureSpecFunc{
				WithOption(NewOption("output", WithShortFlag("out"))),
			},
			"single character",
		},
		{
			"option default of wrong type",
			[]ConfigureSpecFunc{
				WithOption(NewOption("port", WithType(Number), WithDefaultValue("eighty"))),
			},
			"not a number",
		},
		{
			"positional default of wrong type",
			[]ConfigureSpecFunc{
				WithPositional(NewPositional("count", 0, WithPositionalType(Number), WithPositionalDefault("x"))),
			},
			"not a number",
		},
		{
			"name shared between option and command",
			[]ConfigureSpecFunc{
				WithOption(NewOption("build")),
				WithCommand(NewCommand("build", WithCommandSpecFunc(emptySpec))),
			},
			"duplicate name",
		},
		{
			"command without a spec",
			[]ConfigureSpecFunc{
				WithCommand(NewCommand("build")),
			},
			"has no spec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpec("app", tt.configs...)
			require.ErrorIs(t, err, ErrStructural)
			if tt.wantIn != "" {
				assert.Contains(t, err.Error(), tt.wantIn)
			}
		})
	}
}

func TestSpec_AddOptionNormalizesName(t *testing.T) {
	spec := buildSpec(t)
	require.NoError(t, spec.AddOption(NewOption("OutputDir", WithType(String))))

	option, found := spec.GetOption("output-dir")
	require.True(t, found)
	assert.Equal(t, "output-dir", option.Name)
	assert.Equal(t, 1, spec.OptionCount())
}

func TestSpec_AddUnnamed(t *testing.T) {
	spec := buildSpec(t)
	assert.ErrorIs(t, spec.AddOption(nil), ErrStructural)
	assert.ErrorIs(t, spec.AddOption(&Option{}), ErrStructural)
	assert.ErrorIs(t, spec.AddPositional(nil), ErrStructural)
	assert.ErrorIs(t, spec.AddCommand(nil), ErrStructural)
}

func TestSpec_PositionalsOrderedByIndex(t *testing.T) {
	spec := buildSpec(t,
		WithPositional(NewPositional("second", 1)),
		WithPositional(NewPositional("first", 0)),
	)

	ordered := spec.Positionals()
	require.Len(t, ordered, 2)
	assert.Equal(t, "first", ordered[0].Name)
	assert.Equal(t, "second", ordered[1].Name)
}

func TestSpec_CollectorRequiresListType(t *testing.T) {
	// AsRest and AsRaw force a list type themselves; a hand-built descriptor
	// with a scalar type must be rejected
	spec := buildSpec(t)
	err := spec.AddPositional(&Positional{Name: "files", Index: 0, Rest: true, TypeOf: String})
	assert.ErrorIs(t, err, ErrStructural)
}

func TestSpec_Visit(t *testing.T) {
	resolved := false
	spec := buildSpec(t,
		WithCommand(NewCommand("remote",
			WithCommandSpec(buildSpec(t,
				WithCommand(NewCommand("add",
					WithCommandSpecFunc(func() *Spec {
						resolved = true
						return buildSpec(t)
					}),
				)),
				WithCommand(NewCommand("remove",
					WithCommandSpec(buildSpec(t)),
				)),
			)),
		)),
	)

	var paths []string
	var levels []int
	err := spec.Visit(func(cmd *SubCommand, sub *Spec, path string, level int) bool {
		paths = append(paths, path)
		levels = append(levels, level)
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"remote", "remote add", "remote remove"}, paths)
	assert.Equal(t, []int{0, 1, 1}, levels)
	assert.True(t, resolved, "visiting must resolve lazy specs")
}

func TestSpec_VisitSkipsBranch(t *testing.T) {
	spec := buildSpec(t,
		WithCommand(NewCommand("remote",
			WithCommandSpec(buildSpec(t,
				WithCommand(NewCommand("add", WithCommandSpec(buildSpec(t)))),
			)),
		)),
	)

	var paths []string
	err := spec.Visit(func(cmd *SubCommand, sub *Spec, path string, level int) bool {
		paths = append(paths, path)
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"remote"}, paths)
}

func TestSubCommand_LazySpecValidatedOnce(t *testing.T) {
	builds := 0
	command := NewCommand("build", WithCommandSpecFunc(func() *Spec {
		builds++
		return buildSpec(t, WithOption(NewOption("output", WithType(String))))
	}))
	parser := buildParser(t, buildSpec(t, WithCommand(command)))

	for i := 0; i < 3; i++ {
		_, err := parser.Parse([]string{"build", "--output", "dist"})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, builds)
}

func TestSubCommand_LazySpecNotBuiltWhenUnselected(t *testing.T) {
	command := NewCommand("build", WithCommandSpecFunc(func() *Spec {
		t.Fatal("spec built for an unselected branch")
		return nil
	}))
	parser := buildParser(t, buildSpec(t, WithCommand(command)))

	_, err := parser.Parse(nil)
	require.NoError(t, err)
}

func TestOption_String(t *testing.T) {
	option := NewOption("output",
		WithShortFlag("o"),
		WithType(String),
		WithDescription("output directory"),
		WithDefaultValue("dist"),
	)
	assert.Equal(t, `--output or -o "output directory" (defaults to: dist)`, option.String())
}

func TestPositional_Placeholders(t *testing.T) {
	assert.Equal(t, "<src>", NewPositional("src", 0).placeholder())
	assert.Equal(t, "[dst]", NewPositional("dst", 1, WithPositionalDefault("out")).placeholder())
	assert.Equal(t, "<files...>", NewPositional("files", 2, AsRest()).placeholder())
	assert.Equal(t, "<args...>", NewPositional("args", 0, AsRaw()).placeholder())
}
