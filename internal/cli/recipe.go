package cli

import (
	"github.com/cruciblehq/mdbuild/internal/build"
	"github.com/cruciblehq/mdbuild/internal/rules"
)

// Flags shared by the commands that produce a recipe.
type RecipeFlags struct {
	Markdown string   `arg:"" type:"path" help:"Markdown document containing the instructions."`
	Base     string   `short:"b" placeholder:"IMAGE" help:"Base image. Defaults to the base named in the document's front matter."`
	Flag     []string `short:"f" sep:"none" placeholder:"TOOL=FLAG" help:"Add FLAG to every command starting with TOOL. Repeat to add more."`
	Lang     []string `short:"l" placeholder:"LANG" help:"Only read code blocks tagged with these languages."`
}

// Returns pipeline options for the flags.
//
// Flag rules are applied in the order given on the command line.
func (f *RecipeFlags) options() (build.Options, error) {
	rs := rules.New()
	for _, raw := range f.Flag {
		tool, flag, err := rules.Parse(raw)
		if err != nil {
			return build.Options{}, err
		}
		rs.Flag(tool, flag)
	}

	return build.Options{
		Markdown:  f.Markdown,
		Base:      f.Base,
		Rules:     rs,
		Languages: f.Lang,
	}, nil
}
