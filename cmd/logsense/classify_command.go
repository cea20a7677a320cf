package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"logsense/internal/classifier"
	"logsense/internal/model"
	"logsense/internal/modelrouter"
)

func newClassifyCommand() *cobra.Command {
	var file string
	var language string

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify text and show the model the router would pick",
		Long: `Classify text into a task type and show the model the router would
select, without calling the upstream API.

Examples:
  logsense classify "Exception: NullPointerException at line 5"
  logsense classify -f /var/log/app.log
  logsense classify --language go "please refactor this function"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, file)
			if err != nil {
				return err
			}

			cls := classifier.New()
			router := modelrouter.New(modelrouter.NewCatalog(), 0)

			taskType := cls.Classify(text)
			severity := cls.AssessSeverity(text)
			modelID := router.ForContext(model.SelectionContext{
				TaskType:   taskType,
				Language:   language,
				TextLength: len(text),
			})

			fmt.Printf("task type: %s\n", taskType)
			fmt.Printf("severity:  %s\n", severity)
			fmt.Printf("model:     %s\n", modelID)
			fmt.Printf("length:    %d bytes\n", len(text))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file instead of arguments")
	cmd.Flags().StringVar(&language, "language", "", "Programming language hint")

	return cmd
}
