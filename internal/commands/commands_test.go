package commands

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"

	"github.com/carck/unsupervised/internal/config"
	"github.com/carck/unsupervised/internal/report"
	"github.com/carck/unsupervised/pkg/clusters"
)

func run(t *testing.T, args ...string) error {
	t.Helper()

	app := cli.NewApp()
	app.Name = "unsupervised"
	app.Flags = config.GlobalFlags
	app.Commands = Commands

	return app.Run(append([]string{"unsupervised"}, args...))
}

func TestKMeansCommand(t *testing.T) {
	t.Run("Run", func(t *testing.T) {
		out := t.TempDir()

		require.NoError(t, run(t, "--output-path", out, "kmeans", "--k", "2", "testdata/line.csv"))

		data, err := os.ReadFile(filepath.Join(out, "kmeans.yml"))
		require.NoError(t, err)

		var result report.KMeans
		require.NoError(t, yaml.Unmarshal(data, &result))

		assert.Equal(t, 2, result.K)
		assert.True(t, result.Converged)
		assert.Len(t, result.Labels, 6)
	})
	t.Run("MissingFile", func(t *testing.T) {
		assert.Error(t, run(t, "--output-path", t.TempDir(), "kmeans"))
	})
}

func TestHierarchyCommand(t *testing.T) {
	t.Run("Run", func(t *testing.T) {
		out := t.TempDir()

		require.NoError(t, run(t, "--output-path", out, "hierarchy", "--linkage", "complete", "--k", "2", "testdata/line.csv"))

		data, err := os.ReadFile(filepath.Join(out, "hierarchy.yml"))
		require.NoError(t, err)

		var result report.Hierarchy
		require.NoError(t, yaml.Unmarshal(data, &result))

		assert.Equal(t, "complete", result.Linkage)
		assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, result.Labels)
	})
	t.Run("NonFinite", func(t *testing.T) {
		err := run(t, "--output-path", t.TempDir(), "hierarchy", "testdata/inf.csv")
		assert.ErrorIs(t, err, clusters.ErrNonFinite)
	})
	t.Run("UnknownLinkage", func(t *testing.T) {
		assert.Error(t, run(t, "--output-path", t.TempDir(), "hierarchy", "--linkage", "centroid", "testdata/line.csv"))
	})
}

func TestFeaturesCommand(t *testing.T) {
	t.Run("Run", func(t *testing.T) {
		images := t.TempDir()
		out := t.TempDir()

		img := image.NewGray(image.Rect(0, 0, 16, 16))
		img.SetGray(3, 3, color.Gray{Y: 200})

		f, err := os.Create(filepath.Join(images, "pixel.png"))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())

		require.NoError(t, run(t, "--output-path", out, "--side", "8", "features", images))

		data, err := os.ReadFile(filepath.Join(out, "features.yml"))
		require.NoError(t, err)

		var result report.Features
		require.NoError(t, yaml.Unmarshal(data, &result))

		assert.Equal(t, 8, result.Side)
		require.Len(t, result.Images, 1)
		assert.Len(t, result.Images[0].Values, 16)
	})
	t.Run("OddSide", func(t *testing.T) {
		assert.Error(t, run(t, "--output-path", t.TempDir(), "--side", "7", "features", t.TempDir()))
	})
}
