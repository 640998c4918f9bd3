package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/config"
	"portfolio-core/internal/domain/assistant"
	"portfolio-core/internal/domain/browser"
	"portfolio-core/internal/domain/events"
	"portfolio-core/internal/github"
	infraGitHub "portfolio-core/internal/infrastructure/github"
	"portfolio-core/internal/infrastructure/rag"
	"portfolio-core/internal/logging"
	"portfolio-core/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Browse GitHub projects and query the resume assistant from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(browseCmd(), reposCmd(), askCmd(), alignCmd(), ingestCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive project browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(needGitHub)
			if err != nil {
				return err
			}
			source := repositorySource(cfg, logger)

			p := tea.NewProgram(tui.NewBrowseModel(cmd.Context(), source, cfg.GitHub.Username, logger.Named("browser")), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

func reposCmd() *cobra.Command {
	var search, language string
	var page int

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Print one page of projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(needGitHub)
			if err != nil {
				return err
			}

			b := browser.New(logger.Named("browser"))
			b.Load(cmd.Context(), repositorySource(cfg, logger))
			if reason, failed := b.State().Reason(); failed {
				return fmt.Errorf("unable to fetch projects from GitHub: %s", reason)
			}

			b.SetSearchTerm(search)
			b.SetLanguageFilter(language)
			b.SetPage(page)

			if b.IsEmpty() {
				fmt.Println("No projects found")
				return nil
			}

			first, last := b.Range()
			fmt.Print(tui.RenderTable(b.Visible(), first))
			fmt.Printf("\nShowing %d-%d of %s projects (page %d/%d, language %s)\n",
				first, last, humanize.Comma(int64(len(b.Filtered()))), b.Page(), b.TotalPages(), b.Language())
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Match name, description or topics")
	cmd.Flags().StringVarP(&language, "language", "l", browser.LanguageAll, "Primary language filter")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	return cmd
}

func askCmd() *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the resume assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := assistantService()
			if err != nil {
				return err
			}

			reply, err := svc.Ask(cmd.Context(), dto.ChatRequest{Question: strings.Join(args, " "), TopK: topK})
			if err != nil {
				return err
			}
			return printReply(reply, "answer")
		},
	}
	cmd.Flags().IntVarP(&topK, "top-k", "k", assistant.DefaultTopK, "Number of resume chunks to retrieve")
	return cmd
}

func alignCmd() *cobra.Command {
	var jobFile string

	cmd := &cobra.Command{
		Use:   "align [question]",
		Short: "Analyze how the resume fits a job description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := os.ReadFile(jobFile)
			if err != nil {
				return fmt.Errorf("reading job description: %w", err)
			}

			svc, err := assistantService()
			if err != nil {
				return err
			}

			reply, err := svc.Align(cmd.Context(), dto.AlignmentRequest{
				JobDescription: string(desc),
				Question:       strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			return printReply(reply, "analysis")
		},
	}
	cmd.Flags().StringVarP(&jobFile, "job", "j", "", "File containing the job description")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

func ingestCmd() *cobra.Command {
	var sourceID string

	cmd := &cobra.Command{
		Use:   "ingest [file.pdf]",
		Short: "Add a PDF document to the assistant's knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return err
			}

			svc, err := assistantService()
			if err != nil {
				return err
			}

			if sourceID == "" {
				sourceID = service.NewSourceID()
			}
			reply, err := svc.Ingest(cmd.Context(), assistant.Document{
				FileName:    filepath.Base(args[0]),
				ContentType: "application/pdf",
				Size:        info.Size(),
				Content:     f,
				SourceID:    sourceID,
			})
			if err != nil {
				return err
			}
			if !reply.OK() {
				return fmt.Errorf("failed to ingest document: backend returned %d", reply.StatusCode)
			}
			fmt.Printf("Ingested %s (%s) as %s\n", filepath.Base(args[0]), humanize.IBytes(uint64(info.Size())), sourceID)
			return nil
		},
	}
	cmd.Flags().StringVar(&sourceID, "source-id", "", "Source id recorded with the document (default document_<uuid>)")
	return cmd
}

type requirement int

const (
	needGitHub requirement = iota
	needBackend
)

// setup reads configuration without the server's full validation and checks
// only what the command needs
func setup(need requirement) (*config.Config, hclog.Logger, error) {
	cfg := config.Read()
	switch need {
	case needGitHub:
		if cfg.GitHub.Username == "" {
			return nil, nil, fmt.Errorf("GITHUB_USERNAME is required")
		}
	case needBackend:
		if cfg.Backend.URL == "" {
			return nil, nil, fmt.Errorf("BACKEND_URL is required")
		}
	}

	cfg.Log.JSON = false
	logger := logging.New("portfolioctl", cfg.Log)
	return cfg, logger, nil
}

func repositorySource(cfg *config.Config, logger hclog.Logger) *infraGitHub.RepositorySource {
	client := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Token, cfg.GitHub.Timeout)
	return infraGitHub.NewRepositorySource(client, cfg.GitHub.Username, logger.Named("github"))
}

func assistantService() (*service.AssistantService, error) {
	cfg, logger, err := setup(needBackend)
	if err != nil {
		return nil, err
	}

	dispatcher := events.NewDispatcher(logger.Named("events"))
	dispatcher.Register(assistant.EventTypeDocumentIngested, events.LogHandler(logger.Named("events")))

	client := rag.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, logger.Named("rag"))
	return service.NewAssistantService(client, dispatcher, cfg.Wall.MaxUploadBytes, logger.Named("assistant")), nil
}

func printReply(reply *assistant.Reply, field string) error {
	if !reply.OK() {
		return fmt.Errorf("backend returned %d: %s", reply.StatusCode, strings.TrimSpace(string(reply.Body)))
	}
	if text := reply.Field(field); text != "" {
		fmt.Println(text)
		return nil
	}
	fmt.Println(string(reply.Body))
	return nil
}
