package main

import (
	"fmt"
	"strings"

	"spi-eshop-be/pkg/assistant/search"
	"spi-eshop-be/pkg/department"
	"spi-eshop-be/pkg/llm"
	"spi-eshop-be/pkg/llm/factory"

	"github.com/spf13/cobra"
)

var askChat bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the shopping assistant which department fits a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := factory.NewLLMProvider(factory.Settings{
			Provider: cfg.Ai.Provider,
			Model:    cfg.Ai.Model,
			BaseURL:  cfg.Ai.BaseURL,
			APIKey:   cfg.Ai.ApiKey,
		})
		if err != nil {
			return err
		}

		o := search.NewOrchestrator(department.Default(), provider, search.Config{
			Timeout:    cfg.Ai.Timeout,
			MaxRetries: cfg.Ai.MaxRetries,
			Logger:     cliLogger(),
		})

		question := strings.Join(args, " ")
		var res search.Result
		if askChat {
			res = o.Chat(cmd.Context(), question, []llm.Message{})
		} else {
			res = o.Search(cmd.Context(), question)
		}
		printResult(res)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askChat, "chat", false, "use the conversational prompt instead of search")
	rootCmd.AddCommand(askCmd)
}

func printResult(res search.Result) {
	if res.Degraded {
		warnf("⚠ assistant unavailable, fallback answer\n")
	}
	fmt.Printf("%s %s\n", label("Department:"), orDash(res.Department))
	fmt.Printf("%s %s\n", label("Sub-category:"), orDash(res.SubCategory))
	fmt.Printf("%s %s\n", label("Message:"), res.Message)
	if len(res.Suggestions) > 0 {
		fmt.Printf("%s %s\n", label("Suggestions:"), strings.Join(res.Suggestions, ", "))
	}
	if res.Failure != search.FailureNone {
		fmt.Println(dim("failure: " + string(res.Failure)))
	}
}

func orDash(s *string) string {
	if s == nil {
		return dim("-")
	}
	return *s
}
