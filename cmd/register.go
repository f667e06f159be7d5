package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mzeman/facegate/internal/config"
	"github.com/mzeman/facegate/internal/database"
	"github.com/mzeman/facegate/internal/database/postgres"
	"github.com/mzeman/facegate/internal/detector"
	"github.com/mzeman/facegate/internal/face"
)

var registerCmd = &cobra.Command{
	Use:   "register [name] [image-file]",
	Short: "Register a person from an image",
	Long: `Register a person into the registration log from an image file.
Only the first detected face in the image is used.

With --dir, registers every image in a directory instead; each person's
name is taken from the file name without its extension.`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("dir", "", "Register all images in a directory (file name becomes the person's name)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	dir := mustGetString(cmd, "dir")

	if dir == "" && len(args) != 2 {
		return fmt.Errorf("expected [name] [image-file] arguments, or --dir")
	}

	pool, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	personRepo := postgres.NewPersonRepository(pool)
	detectorClient := detector.NewClient(cfg.Detector.URL)
	ctx := cmd.Context()

	if dir != "" {
		if err := registerDirectory(ctx, detectorClient, personRepo, dir); err != nil {
			return err
		}
	} else {
		person, err := registerFile(ctx, detectorClient, personRepo, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (%s)\n", person.Name, person.ID)
	}

	// Keep the Q&A index in sync with the new registrations.
	qaService, _, err := newQAService(ctx, cfg, pool)
	if err != nil {
		return err
	}
	if result, err := qaService.Ingest(ctx); err != nil {
		fmt.Printf("Warning: index refresh failed: %v\n", err)
	} else {
		fmt.Printf("Q&A index refreshed with %d documents\n", result.Documents)
	}

	return nil
}

// registerFile registers a single person from an image file.
func registerFile(
	ctx context.Context, det detector.Detector, repo *postgres.PersonRepository, name, path string,
) (*database.Person, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	boxes, err := det.Detect(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("face detection failed for %s: %w", path, err)
	}
	if len(boxes) == 0 {
		return nil, fmt.Errorf("no face detected in %s", path)
	}

	person := &database.Person{
		ID:           uuid.New(),
		Name:         name,
		Descriptor:   face.Extract(face.CropRegion(img, boxes[0])),
		RegisteredAt: time.Now().UTC(),
	}

	if err := repo.Append(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to store registration for %s: %w", name, err)
	}
	return person, nil
}

// registerDirectory registers every supported image in a directory.
func registerDirectory(
	ctx context.Context, det detector.Detector, repo *postgres.PersonRepository, dir string,
) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no images found in %s", dir)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Registering faces"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)

	registered := 0
	var failures []string
	for _, file := range files {
		name := strings.TrimSuffix(file, filepath.Ext(file))
		if _, err := registerFile(ctx, det, repo, name, filepath.Join(dir, file)); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", file, err))
		} else {
			registered++
		}
		bar.Add(1)
	}
	fmt.Println()

	fmt.Printf("Registered %d of %d images\n", registered, len(files))
	for _, failure := range failures {
		fmt.Printf("  skipped %s\n", failure)
	}
	return nil
}
