package cmd

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzeman/facegate/internal/config"
	"github.com/mzeman/facegate/internal/database/postgres"
	"github.com/mzeman/facegate/internal/detector"
	"github.com/mzeman/facegate/internal/face"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize [image-file]",
	Short: "Recognize faces in an image",
	Long: `Recognize every face in an image against the registration log.
Faces that match no registered person are reported as Unknown.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecognize,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)

	recognizeCmd.Flags().Float64("threshold", 0, "Override the recognition distance threshold")
}

func runRecognize(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	threshold := cfg.Recognition.Threshold
	if override := mustGetFloat64(cmd, "threshold"); override > 0 {
		threshold = override
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	pool, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := cmd.Context()
	detectorClient := detector.NewClient(cfg.Detector.URL)

	boxes, err := detectorClient.Detect(ctx, raw)
	if err != nil {
		return fmt.Errorf("face detection failed: %w", err)
	}
	if len(boxes) == 0 {
		fmt.Println("No faces detected")
		return nil
	}

	people, err := postgres.NewPersonRepository(pool).All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registrations: %w", err)
	}

	results := face.Recognize(img, boxes, people, threshold)

	fmt.Printf("Found %d face(s):\n", len(results))
	for i, result := range results {
		fmt.Printf("  %d. %s at [%d, %d, %d, %d]\n",
			i+1, result.Name, result.Box.X, result.Box.Y, result.Box.W, result.Box.H)
	}
	return nil
}
