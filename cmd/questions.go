package cmd

import (
	"context"
	"fmt"
	"strings"

	"vidquiz/internal/storage"
	"vidquiz/internal/transcript"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List stored quiz questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		course, _ := cmd.Flags().GetString("course")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		questions, err := st.Questions().List(ctx, course, limit)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}

		if len(questions) == 0 {
			fmt.Println("No questions stored yet.")
			return nil
		}

		fmt.Printf("%-10s  %-8s  %-16s  %-6s  %s\n",
			"Course", "Time", "Type", "Visual", "Question")
		fmt.Println(strings.Repeat("─", 100))

		for _, q := range questions {
			visual := ""
			if q.HasVisualAsset {
				visual = "✓"
			}
			fmt.Printf("%-10s  %-8s  %-16s  %-6s  %s\n",
				truncate(q.CourseID, 10),
				transcript.FormatTimestamp(q.Timestamp),
				q.Type,
				visual,
				truncate(q.Question, 52),
			)
		}

		total, err := st.Questions().Count(ctx, course)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		fmt.Printf("\n%d of %d shown\n", len(questions), total)
		return nil
	},
}

func init() {
	questionsCmd.Flags().StringP("course", "C", "", "Filter by course ID")
	questionsCmd.Flags().IntP("limit", "n", 50, "Maximum questions to show (0 for all)")
}
