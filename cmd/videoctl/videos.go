package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"myflix/internal/catalog"
	"myflix/internal/models"
)

const emptyCatalogMessage = "Ainda não temos vídeos."

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List videos grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := a.registry(cmd)
			if err != nil {
				return err
			}

			if r.Loading() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Carregando vídeos...")
			}
			// a failed load renders as an empty catalog; the registry logs the cause
			_ = r.Load(cmd.Context())

			groups := catalog.GroupByCategory(r.Videos())
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), emptyCatalogMessage)
				return nil
			}

			out := cmd.OutOrStdout()
			for i, g := range groups {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", g.Category)
				for _, v := range g.Videos {
					fmt.Fprintf(out, "  [%d] %s\n", v.ID, v.Title)
					fmt.Fprintf(out, "      image: %s\n", catalog.CardImage(v))
				}
			}
			return nil
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [VIDEO_ID]",
		Short: "Show a video with its player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVideoID(args[0])
			if err != nil {
				return err
			}

			r, api, err := a.registry(cmd)
			if err != nil {
				return err
			}

			video, err := api.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get video: %w", err)
			}

			r.OpenView(*video)
			printVideo(cmd.OutOrStdout(), r.View().Video)
			r.Close()
			return nil
		},
	}
}

func printVideo(w io.Writer, v models.Video) {
	player := catalog.PlayerFor(v)
	fmt.Fprintf(w, "%s\n", v.Title)
	fmt.Fprintf(w, "Player (%s): %s\n", player.Kind, player.URL)
	fmt.Fprintf(w, "%s\n", v.Description)
	fmt.Fprintf(w, "Categoria: %s\n", v.Category)
}

// fieldFlags binds the five editable fields to command flags.
type fieldFlags struct {
	fields models.VideoFields
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.fields.Title, "title", "", "video title")
	fs.StringVar((*string)(&f.fields.Category), "category", "", "one of "+categoryList())
	fs.StringVar(&f.fields.Image, "image", "", "image URL (blank uses the YouTube thumbnail)")
	fs.StringVar(&f.fields.VideoURL, "url", "", "video URL (YouTube links are supported)")
	fs.StringVar(&f.fields.Description, "description", "", "video description")
}

// overlay copies the flags the user actually set onto base.
func (f *fieldFlags) overlay(cmd *cobra.Command, base models.VideoFields) models.VideoFields {
	fs := cmd.Flags()
	if fs.Changed("title") {
		base.Title = f.fields.Title
	}
	if fs.Changed("category") {
		base.Category = f.fields.Category
	}
	if fs.Changed("image") {
		base.Image = f.fields.Image
	}
	if fs.Changed("url") {
		base.VideoURL = f.fields.VideoURL
	}
	if fs.Changed("description") {
		base.Description = f.fields.Description
	}
	return base
}

func categoryList() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, strconv.Quote(c.String()))
	}
	return strings.Join(names, ", ")
}

func newAddCommand(a *app) *cobra.Command {
	flags := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := a.registry(cmd)
			if err != nil {
				return err
			}

			draft := flags.fields
			if err := r.Create(cmd.Context(), &draft); err != nil {
				return fmt.Errorf("failed to save video: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newEditCommand(a *app) *cobra.Command {
	flags := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "edit [VIDEO_ID]",
		Short: "Edit a video; fields without a flag keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVideoID(args[0])
			if err != nil {
				return err
			}

			r, _, err := a.registry(cmd)
			if err != nil {
				return err
			}
			if err := r.Load(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load videos: %w", err)
			}

			current, ok := findVideo(r.Videos(), id)
			if !ok {
				return fmt.Errorf("video %d not found", id)
			}

			r.OpenEdit(current)
			updated, err := r.SubmitEdit(cmd.Context(), flags.overlay(cmd, current.Fields()))
			if err != nil {
				return fmt.Errorf("failed to update video: %w", err)
			}

			printVideo(cmd.OutOrStdout(), *updated)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [VIDEO_ID]",
		Short: "Delete a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseVideoID(args[0])
			if err != nil {
				return err
			}

			r, _, err := a.registry(cmd)
			if err != nil {
				return err
			}
			if err := r.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete video: %w", err)
			}
			return nil
		},
	}
}

func findVideo(videos []models.Video, id uint) (models.Video, bool) {
	for _, v := range videos {
		if v.ID == id {
			return v, true
		}
	}
	return models.Video{}, false
}

func parseVideoID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid video ID %q", raw)
	}
	return uint(id), nil
}
