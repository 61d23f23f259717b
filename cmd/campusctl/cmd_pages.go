package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show network, forum and request counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := c.requireSession(out); err != nil {
				return err
			}

			view := c.dashboard.Load(cmd.Context())
			if err := report(out, view.Toasts...); err != nil {
				return err
			}

			cards := make([]string, 0, 3)
			for _, card := range view.Cards() {
				cards = append(cards, cardStyle.Render(fmt.Sprintf("%s\n%s\n%s",
					headingStyle.Render(card.Title), titleStyle.Render(strconv.Itoa(card.Value)), mutedStyle.Render(card.Description))))
			}
			fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, cards...))

			printTitle(out, "Recent forum posts")
			if len(view.RecentPosts) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("  No posts yet"))
			}
			for _, p := range view.RecentPosts {
				fmt.Fprintf(out, "  %s %s\n", p.Title, mutedStyle.Render("by "+p.AuthorName()))
			}

			printTitle(out, "Connection requests")
			if len(view.Requests) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("  No pending requests"))
			}
			for _, r := range view.Requests {
				fmt.Fprintf(out, "  %s %s %s\n", r.SenderName(), mutedStyle.Render(r.SenderEmail()), tagStyle.Render(r.Status))
			}
			return nil
		},
	}
}

func (c *cli) alumniCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alumni",
		Short: "Browse the alumni directory",
	}

	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "List all alumni",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printDirectory(cmd, dto.AlumniSearchForm{Page: page})
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")

	var filter dto.AlumniSearchForm
	search := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search alumni by keyword and company",
		Long:  "Searches by keyword and company. With both empty the full directory is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				filter.Keyword = args[0]
			}
			return c.printDirectory(cmd, filter)
		},
	}
	search.Flags().StringVarP(&filter.Keyword, "keyword", "k", "", "name, expertise or bio keyword")
	search.Flags().StringVarP(&filter.Company, "company", "c", "", "company name")
	search.Flags().IntVar(&filter.Page, "page", 1, "page number")

	connect := &cobra.Command{
		Use:   "connect <alumni-id>",
		Short: "Send a connection request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return apperrors.NewBadRequestError("invalid alumni id: " + args[0])
			}
			if err := c.requireSession(out); err != nil {
				return err
			}
			return report(out, c.alumni.Connect(cmd.Context(), id))
		},
	}

	cmd.AddCommand(list, search, connect)
	return cmd
}

func (c *cli) printDirectory(cmd *cobra.Command, filter dto.AlumniSearchForm) error {
	out := cmd.OutOrStdout()
	if err := c.requireSession(out); err != nil {
		return err
	}

	dir := c.alumni.Directory(cmd.Context(), filter)
	if err := report(out, dir.Toasts...); err != nil {
		return err
	}
	if len(dir.Alumni) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No alumni found"))
		return nil
	}

	for _, a := range dir.Alumni {
		fmt.Fprintf(out, "%s %s\n", mutedStyle.Render(fmt.Sprintf("#%-4d", a.ConnectID())), headingStyle.Render(a.Name))
		details := make([]string, 0, 3)
		for _, s := range []string{a.Company, a.Location, a.DisplayEmail()} {
			if s != "" {
				details = append(details, s)
			}
		}
		if len(details) > 0 {
			fmt.Fprintln(out, "      "+strings.Join(details, " · "))
		}
		if tags := a.Tags(); len(tags) > 0 {
			fmt.Fprintln(out, "      "+renderTags(tags))
		}
	}
	p := dir.Pagination
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Page %d of %d · %d alumni", p.CurrentPage, p.TotalPages, p.TotalItems)))
	return nil
}

func (c *cli) forumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forum",
		Short: "Read and write forum posts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List forum posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := c.requireSession(out); err != nil {
				return err
			}
			view := c.forum.Load(cmd.Context())
			if err := report(out, view.Toasts...); err != nil {
				return err
			}
			printPosts(out, view.Posts)
			return nil
		},
	}

	var form dto.PostForm
	post := &cobra.Command{
		Use:   "post",
		Short: "Publish a post",
		Long:  "Publishes a post. Use --content - to read the Markdown body from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := c.requireSession(out); err != nil {
				return err
			}
			if form.Content == "-" {
				body, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read content: %w", err)
				}
				form.Content = string(body)
			}

			view := c.forum.CreatePost(cmd.Context(), form)
			if err := report(out, view.Toasts...); err != nil {
				return err
			}
			printPosts(out, view.Posts)
			return nil
		},
	}
	post.Flags().StringVarP(&form.Title, "title", "t", "", "post title")
	post.Flags().StringVarP(&form.Content, "content", "m", "", "post body in Markdown, or - for stdin")

	cmd.AddCommand(list, post)
	return cmd
}

func printPosts(w io.Writer, posts []services.PostView) {
	if len(posts) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No posts yet. Start the first discussion!"))
		return
	}
	for _, p := range posts {
		meta := "by " + p.AuthorName()
		if p.Date != "" {
			meta += " · " + p.Date
		}
		fmt.Fprintf(w, "%s %s\n", headingStyle.Render(p.Title), mutedStyle.Render(meta))
		if p.Excerpt != "" {
			fmt.Fprintln(w, "  "+p.Excerpt)
		}
	}
}

func (c *cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := c.requireSession(out); err != nil {
				return err
			}
			view := c.profile.Load(cmd.Context())
			if err := report(out, view.Toasts...); err != nil {
				return err
			}
			if view.Form.Mode == services.ProfileModeCreate {
				fmt.Fprintln(out, mutedStyle.Render("No profile yet. Create one with `campusctl profile save`."))
				return nil
			}
			printProfile(out, view)
			return nil
		},
	}

	var edits dto.ProfileForm
	save := &cobra.Command{
		Use:   "save",
		Short: "Create or update your profile",
		Long:  "Loads the current profile, applies the given flags and saves it. Fields without a flag keep their value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := c.requireSession(out); err != nil {
				return err
			}

			current := c.profile.Load(cmd.Context())
			if err := report(out, current.Toasts...); err != nil {
				return err
			}

			form := current.Form
			flags := cmd.Flags()
			for name, dst := range map[string]*string{
				"name": &form.Name, "email": &form.Email, "bio": &form.Bio, "company": &form.Company,
				"location": &form.Location, "expertise": &form.Expertise, "website": &form.Website, "phone": &form.Phone,
			} {
				if flags.Changed(name) {
					v, _ := flags.GetString(name)
					*dst = v
				}
			}

			view := c.profile.Save(cmd.Context(), form)
			for field, msg := range view.Errors {
				fmt.Fprintf(out, "  %s %s\n", mutedStyle.Render(field+":"), msg)
			}
			if err := report(out, view.Toasts...); err != nil {
				return err
			}
			printProfile(out, view)
			return nil
		},
	}
	save.Flags().StringVar(&edits.Name, "name", "", "display name")
	save.Flags().StringVar(&edits.Email, "email", "", "contact email")
	save.Flags().StringVar(&edits.Bio, "bio", "", "short biography")
	save.Flags().StringVar(&edits.Company, "company", "", "current company")
	save.Flags().StringVar(&edits.Location, "location", "", "city or region")
	save.Flags().StringVar(&edits.Expertise, "expertise", "", "comma-separated skills")
	save.Flags().StringVar(&edits.Website, "website", "", "personal website URL")
	save.Flags().StringVar(&edits.Phone, "phone", "", "phone number")

	cmd.AddCommand(show, save)
	return cmd
}

func printProfile(w io.Writer, view services.ProfileView) {
	f := view.Form
	title := f.Name
	if title == "" {
		title = "Your profile"
	}
	printTitle(w, title)
	printField(w, "Email", f.Email)
	printField(w, "Company", f.Company)
	printField(w, "Location", f.Location)
	printField(w, "Website", f.Website)
	printField(w, "Phone", f.Phone)
	printField(w, "Bio", f.Bio)
	if len(view.Tags) > 0 {
		printField(w, "Expertise", renderTags(view.Tags))
	}
}

func (c *cli) chatbotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatbot",
		Short: "Talk to the campus assistant",
	}

	questions := &cobra.Command{
		Use:   "questions",
		Short: "List suggested questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			qs, toasts := c.chatbot.Questions(cmd.Context())
			if err := report(out, toasts...); err != nil {
				return err
			}
			for i, q := range qs {
				fmt.Fprintf(out, "%s %s\n", mutedStyle.Render(fmt.Sprintf("%2d.", i+1)), q)
			}
			return nil
		},
	}

	ask := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question, or chat line by line from stdin",
		Long: `With a question argument, prints the single answer. Without one, reads
questions from stdin one per line until EOF or "exit" and keeps the
conversation going.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			conv := services.NewConversation()
			if len(args) > 0 {
				return c.ask(cmd, conv, strings.Join(args, " "))
			}

			fmt.Fprintln(out, tagStyle.Render("Assistant: ")+services.ChatGreeting)
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "exit" || line == "quit" {
					break
				}
				if line == "" {
					continue
				}
				if err := c.ask(cmd, conv, line); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.AddCommand(questions, ask)
	return cmd
}

func (c *cli) ask(cmd *cobra.Command, conv *services.Conversation, question string) error {
	out := cmd.OutOrStdout()
	reply, err := c.chatbot.Ask(cmd.Context(), conv, question)
	if err != nil {
		return report(out, services.ToastForError(c.logger, err, "Error", "Please type a question"))
	}
	fmt.Fprintln(out, tagStyle.Render("Assistant: ")+reply.Text)
	return nil
}
