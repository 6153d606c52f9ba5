package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"dsa_tracker/internal/model"

	"github.com/spf13/cobra"
)

func newTopicsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session()
			if err != nil {
				return err
			}
			topics, err := a.tracker.ListTopics(a.context(cmd), session)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
			for _, t := range topics {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Description)
			}
			return tw.Flush()
		},
	}
}

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show progress per topic and overall",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			session, err := a.session()
			if err != nil {
				return err
			}
			profile, err := a.remote.GetProfile(ctx, session.RemoteToken)
			if err != nil {
				return fmt.Errorf("fetch profile: %w", err)
			}
			view, err := a.tracker.Dashboard(ctx, session)
			if err != nil {
				return err
			}
			view.User = *profile
			renderDashboard(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newTopicCommand(a *app) *cobra.Command {
	var showLinks bool

	cmd := &cobra.Command{
		Use:   "topic <topic-id>",
		Short: "Show the problems of a topic with their completion state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session()
			if err != nil {
				return err
			}
			view, err := a.tracker.TopicView(a.context(cmd), session, args[0])
			if err != nil {
				return err
			}
			renderTopic(cmd.OutOrStdout(), view, showLinks)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showLinks, "links", false, "print reference links")
	return cmd
}

func newToggleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <problem-id>",
		Short: "Flip the completed flag of a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			session, err := a.session()
			if err != nil {
				return err
			}
			result, err := a.tracker.Toggle(ctx, session, args[0])
			if err != nil {
				return err
			}
			state := "not completed"
			if result.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", result.ProblemID, state)
			return nil
		},
	}
}

func renderDashboard(w io.Writer, view *model.DashboardView) {
	fmt.Fprintf(w, "Welcome, %s\n\n", view.User.Name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOPIC\tDONE\tPROGRESS")
	for _, t := range view.Topics {
		fmt.Fprintf(tw, "%s\t%d/%d\t%s %d%%\n", t.Name, t.Completed, t.Total, bar(t.Percentage), t.Percentage)
	}
	tw.Flush()

	o := view.Overall
	fmt.Fprintf(w, "\nOverall: %d/%d %s %d%%\n", o.CompletedProblems, o.TotalProblems, bar(o.Percentage), o.Percentage)
}

func renderTopic(w io.Writer, view *model.TopicView, showLinks bool) {
	p := view.Progress
	fmt.Fprintf(w, "%s (%d/%d, %d%%)\n", view.Topic.Name, p.Completed, p.Total, p.Percentage)
	if view.Topic.Description != "" {
		fmt.Fprintln(w, view.Topic.Description)
	}
	fmt.Fprintf(w, "Easy %d / Medium %d / Hard %d\n\n",
		view.Difficulties[model.DifficultyEasy], view.Difficulties[model.DifficultyMedium], view.Difficulties[model.DifficultyHard])

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, problem := range view.Problems {
		mark := "[ ]"
		if problem.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, problem.ID, problem.Title, problem.Difficulty)
		if showLinks {
			for _, link := range links(problem.Links) {
				fmt.Fprintf(tw, "\t\t  %s\t\n", link)
			}
		}
	}
	tw.Flush()
}

func links(l model.Links) []string {
	var out []string
	for _, kv := range [][2]string{{"youtube", l.YouTube}, {"leetcode", l.LeetCode}, {"codeforces", l.Codeforces}, {"article", l.Article}} {
		if kv[1] != "" {
			out = append(out, kv[0]+": "+kv[1])
		}
	}
	return out
}

// bar は 0-100 の割合を10マスのバーで表します。
func bar(percentage int) string {
	filled := percentage / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 10-filled) + "]"
}
