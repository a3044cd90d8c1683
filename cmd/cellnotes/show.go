package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cellnotes/pkg/comments"
	"github.com/arthur-debert/cellnotes/pkg/document"
	"github.com/arthur-debert/cellnotes/pkg/style"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "List the authors and comments of a comments part",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	source, err := document.Load(args[0])
	if err != nil {
		return err
	}

	part, err := comments.Parse(source)
	if err != nil {
		return err
	}

	fmt.Println(styled(style.TitleStyle, "Authors"))
	if len(part.Authors) == 0 {
		fmt.Println(styled(style.MutedStyle, "  (none)"))
	}
	for i, author := range part.Authors {
		fmt.Printf("  [%d] %s\n", i, styled(style.AuthorStyle, author))
	}

	fmt.Println(styled(style.TitleStyle, "Comments"))
	if len(part.Comments) == 0 {
		fmt.Println(styled(style.MutedStyle, "  (none)"))
	}
	for _, comment := range part.Comments {
		fmt.Printf("  %s %s: %s\n",
			styled(style.CellStyle, comment.Ref.String()),
			styled(style.AuthorStyle, authorName(part, comment.AuthorID)),
			comment.Text.Plain())
	}

	return nil
}

// authorName resolves an author index for display; indices are not validated
// at parse time, so out-of-range values are shown as the bare index
func authorName(part *comments.Part, id int) string {
	if id >= 0 && id < len(part.Authors) {
		return part.Authors[id]
	}
	return fmt.Sprintf("author #%d", id)
}
