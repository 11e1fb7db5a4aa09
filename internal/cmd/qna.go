package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

var qnaCmd = &cobra.Command{
	Use:   "qna",
	Short: "Ask and answer questions in the member forum",
}

var (
	qnaListFlags listFlags
	qnaSearch    string
	qnaTags      string

	askTitle string
	askBody  string
	askTags  []string

	answerBody string

	voteAnswerID string
	voteDown     bool
)

var qnaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions",
	RunE:  runQnaList,
}

var qnaShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a question with its answers",
	Args:  cobra.ExactArgs(1),
	RunE:  runQnaShow,
}

var qnaAskCmd = &cobra.Command{
	Use:   "ask",
	Short: "Post a new question",
	RunE:  runQnaAsk,
}

var qnaAnswerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Answer a question",
	Args:  cobra.ExactArgs(1),
	RunE:  runQnaAnswer,
}

var qnaVoteCmd = &cobra.Command{
	Use:   "vote <question-id>",
	Short: "Vote on a question or, with --answer, on an answer",
	Args:  cobra.ExactArgs(1),
	RunE:  runQnaVote,
}

func init() {
	qnaListFlags.register(qnaListCmd)
	qnaListCmd.Flags().StringVar(&qnaSearch, "search", "", "full-text search")
	qnaListCmd.Flags().StringVar(&qnaTags, "tags", "", "comma-separated tag filter")

	qnaAskCmd.Flags().StringVar(&askTitle, "title", "", "question title")
	qnaAskCmd.Flags().StringVar(&askBody, "body", "", "question body")
	qnaAskCmd.Flags().StringSliceVar(&askTags, "tag", nil, "tag (repeatable)")

	qnaAnswerCmd.Flags().StringVar(&answerBody, "body", "", "answer body")

	qnaVoteCmd.Flags().StringVar(&voteAnswerID, "answer", "", "vote on this answer instead of the question")
	qnaVoteCmd.Flags().BoolVar(&voteDown, "down", false, "vote down instead of up")

	qnaCmd.AddCommand(qnaListCmd, qnaShowCmd, qnaAskCmd, qnaAnswerCmd, qnaVoteCmd)
	rootCmd.AddCommand(qnaCmd)
}

func runQnaList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	params := qnaListFlags.params().
		WithFilter(api.FilterSearch, qnaSearch).
		WithFilter(api.FilterTags, qnaTags)
	page, err := app.client.ListQuestions(cmd.Context(), params)
	if err != nil {
		return err
	}

	return emitList(page, func(items []api.Question) *ux.Table {
		t := ux.NewTable("ID", "Title", "Author", "Votes", "Answers")
		for _, q := range items {
			t.AddRow(q.ID, q.Title, q.Author, strconv.Itoa(q.Votes), strconv.Itoa(q.AnswerCount))
		}
		return t
	})
}

func runQnaShow(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	detail, err := app.client.GetQuestion(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if flagOutput != "text" {
		return emit(detail)
	}

	q := detail.Question
	fmt.Printf("[%+d] %s\n", q.Votes, q.Title)
	fmt.Printf("by %s", q.Author)
	if len(q.Tags) > 0 {
		fmt.Printf("  tags: %s", strings.Join(q.Tags, ", "))
	}
	fmt.Printf("\n\n%s\n", q.Body)

	if len(detail.Answers) == 0 {
		fmt.Println("\nNo answers yet.")
		return nil
	}
	fmt.Printf("\n%d answer(s):\n", len(detail.Answers))
	for _, a := range detail.Answers {
		fmt.Printf("\n  [%+d] %s (%s)\n  %s\n", a.Votes, a.ID, a.Author, a.Body)
	}
	return nil
}

func runQnaAsk(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	title := askTitle
	if title == "" {
		title = ux.PromptForString("Title", "")
	}
	body := askBody
	if body == "" {
		body = ux.PromptForString("Question", "")
	}

	question, err := app.client.AskQuestion(cmd.Context(), api.AskInput{
		Title: title,
		Body:  body,
		Tags:  askTags,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Question posted: %s\n", question.ID)
	return nil
}

func runQnaAnswer(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	body := answerBody
	if body == "" {
		body = ux.PromptForString("Answer", "")
	}

	answer, err := app.client.PostAnswer(cmd.Context(), args[0], body)
	if err != nil {
		return err
	}
	fmt.Printf("Answer posted: %s\n", answer.ID)
	return nil
}

func runQnaVote(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	direction := api.VoteUp
	if voteDown {
		direction = api.VoteDown
	}

	var (
		votes int
	)
	if voteAnswerID != "" {
		votes, err = app.client.VoteAnswer(cmd.Context(), args[0], voteAnswerID, direction)
	} else {
		votes, err = app.client.VoteQuestion(cmd.Context(), args[0], direction)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Vote recorded. New count: %d\n", votes)
	return nil
}
