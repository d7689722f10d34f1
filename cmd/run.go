package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"vidquiz/internal/config"
	"vidquiz/internal/llm"
	"vidquiz/internal/pipeline"
	"vidquiz/internal/progress"
	"vidquiz/internal/storage"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate quiz questions from a video",
	Long: `Run the full generation pipeline against a video: plan question
opportunities from the transcript, generate each question, verify quality,
and persist the survivors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd)
	},
}

func init() {
	runCmd.Flags().String("video", "", "Video source URL (required)")
	runCmd.Flags().String("course", "", "Course ID the questions belong to (required)")
	runCmd.Flags().IntP("max-questions", "n", 0, "Maximum number of questions to plan (0 uses the configured default)")
	runCmd.Flags().String("difficulty", "", "Target difficulty: easy, medium, or hard")
	runCmd.Flags().StringSlice("focus", nil, "Topics the planner should favor (repeatable)")
	runCmd.Flags().Bool("visual", true, "Allow visual question types (hotspot)")
	runCmd.Flags().Bool("no-verify", false, "Skip the quality verification stage")
	runCmd.Flags().Bool("no-save", false, "Print results without persisting them")
	runCmd.Flags().StringP("config", "c", "", "Path to config file")

	_ = runCmd.MarkFlagRequired("video")
	_ = runCmd.MarkFlagRequired("course")
}

func runPipeline(cmd *cobra.Command) error {
	ctx := cmd.Context()

	video, _ := cmd.Flags().GetString("video")
	course, _ := cmd.Flags().GetString("course")
	maxQuestions, _ := cmd.Flags().GetInt("max-questions")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	focus, _ := cmd.Flags().GetStringSlice("focus")
	visual, _ := cmd.Flags().GetBool("visual")
	noVerify, _ := cmd.Flags().GetBool("no-verify")
	noSave, _ := cmd.Flags().GetBool("no-save")
	configPath, _ := cmd.Flags().GetString("config")

	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if maxQuestions > 0 {
		cfg.MaxQuestions = maxQuestions
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Priority: --db flag, VIDQUIZ_DB env var, config file, XDG default.
	var dbPath string
	if flagDB, _ := cmd.Flags().GetString("db"); flagDB == "" && os.Getenv("VIDQUIZ_DB") == "" && cfg.DBPath != "" {
		dbPath = cfg.DBPath
		err = storage.EnsureDir(dbPath)
	} else {
		dbPath, err = resolveDBPath(cmd)
	}
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	llmCfg := llm.ConfigFromEnv()
	if llmCfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured: set VIDQUIZ_GEMINI_API_KEY or GEMINI_API_KEY (or another provider's key)")
		}
		llmCfg = discovered
	}

	provider, err := llm.NewGateway(ctx, llmCfg, st.Events(), log)
	if err != nil {
		return fmt.Errorf("build LLM gateway: %w", err)
	}

	opts := pipeline.Options{
		Provider: provider,
		Config:   cfg,
		Tracker:  progress.NewLogTracker(log),
		Logger:   log,
	}
	if !noSave {
		opts.Questions = st.Questions()
	}

	resp := pipeline.New(opts).Run(ctx, pipeline.Request{
		CourseID:                  course,
		VideoSourceURL:            video,
		MaxQuestions:              cfg.MaxQuestions,
		Difficulty:                difficulty,
		FocusTopics:               focus,
		EnableVisualQuestions:     visual,
		EnableQualityVerification: !noVerify,
	})

	printSummary(resp)

	if !resp.Success {
		return fmt.Errorf("pipeline produced no questions")
	}
	return nil
}

func printSummary(resp *pipeline.Response) {
	sep := strings.Repeat("─", 60)

	fmt.Println(sep)
	fmt.Printf("Video:        %s\n", truncate(resp.VideoSummary, 58))
	if resp.TotalDuration > 0 {
		fmt.Printf("Duration:     %dm%02ds\n", resp.TotalDuration/60, resp.TotalDuration%60)
	}
	fmt.Println(sep)

	fmt.Printf("Planned:      %d\n", resp.Planning.Planned)
	fmt.Printf("Generated:    %d of %d\n", resp.Generation.Succeeded, resp.Generation.Requested)
	for _, qt := range sortedKeys(resp.Generation.TypeBreakdown) {
		fmt.Printf("  %-18s %d\n", qt, resp.Generation.TypeBreakdown[qt])
	}
	if resp.Verification.Enabled {
		fmt.Printf("Verified:     %d passed, %d rejected\n",
			resp.Verification.Passed, resp.Verification.Rejected)
	}
	if resp.Storage.Persisted {
		fmt.Printf("Saved:        %d questions\n", len(resp.FinalQuestions))
	} else {
		fmt.Printf("Final:        %d questions (not saved)\n", len(resp.FinalQuestions))
	}

	if n := resp.Metadata.ErrorCount; n > 0 {
		fmt.Printf("Errors:       %d\n", n)
		for _, e := range collectErrors(resp) {
			fmt.Printf("  - %s\n", truncate(e, 76))
		}
	}

	fmt.Println(sep)
	fmt.Printf("Done in %.1fs (success rate %.0f%%)\n",
		float64(resp.Metadata.TotalTimeMs)/1000, resp.Metadata.SuccessRate*100)
}

func collectErrors(resp *pipeline.Response) []string {
	var out []string
	out = append(out, resp.Planning.Errors...)
	out = append(out, resp.Generation.Errors...)
	out = append(out, resp.Verification.Errors...)
	out = append(out, resp.Storage.Errors...)
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
