package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenian/envdrift/internal/usage"
)

func writeWorkflow(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, ".github", "workflows")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestScanRepo_SecretsAndEnv(t *testing.T) {
	root := t.TempDir()
	writeWorkflow(t, root, "deploy.yml", `name: deploy
jobs:
  deploy:
    steps:
      - run: ./deploy.sh
        env:
          TOKEN: ${{ secrets.API_KEY }}
          REGION: ${{ env.AWS_REGION }}
`)

	records := ScanRepo(root)
	require.Len(t, records, 2)

	assert.Equal(t, "API_KEY", records[0].Key)
	assert.Equal(t, usage.KindWorkflowSecret, records[0].Kind)
	assert.Equal(t, 7, records[0].Line)

	assert.Equal(t, "AWS_REGION", records[1].Key)
	assert.Equal(t, usage.KindWorkflowEnv, records[1].Kind)
	assert.Equal(t, 8, records[1].Line)
}

func TestScanRepo_MissingDirectory(t *testing.T) {
	assert.Empty(t, ScanRepo(t.TempDir()))
}

func TestScanRepo_BothExtensions(t *testing.T) {
	root := t.TempDir()
	writeWorkflow(t, root, "a.yml", `run: ${{ secrets.FROM_YML }}`)
	writeWorkflow(t, root, "b.yaml", `run: ${{ secrets.FROM_YAML }}`)
	writeWorkflow(t, root, "notes.txt", `run: ${{ secrets.IGNORED }}`)

	records := ScanRepo(root)
	require.Len(t, records, 2)
	assert.Equal(t, "FROM_YML", records[0].Key)
	assert.Equal(t, "FROM_YAML", records[1].Key)
}

func TestScanFile_WhitespaceVariants(t *testing.T) {
	root := t.TempDir()
	writeWorkflow(t, root, "ci.yml", `a: ${{secrets.TIGHT}}
b: ${{   secrets.LOOSE   }}
`)

	records := ScanRepo(root)
	require.Len(t, records, 2)
	assert.Equal(t, "TIGHT", records[0].Key)
	assert.Equal(t, "LOOSE", records[1].Key)
}

func TestScanFile_EnvNormalizedToUppercase(t *testing.T) {
	root := t.TempDir()
	writeWorkflow(t, root, "ci.yml", `region: ${{ env.aws_region }}`)

	records := ScanRepo(root)
	require.Len(t, records, 1)
	assert.Equal(t, "AWS_REGION", records[0].Key)
	assert.Equal(t, usage.KindWorkflowEnv, records[0].Kind)
}

func TestSecretNames(t *testing.T) {
	root := t.TempDir()
	writeWorkflow(t, root, "ci.yml", `token: ${{ secrets.API_KEY }}
region: ${{ env.AWS_REGION }}
again: ${{ secrets.API_KEY }}
`)

	records := ScanRepo(root)
	require.Len(t, records, 3)

	names := SecretNames(records)
	assert.Equal(t, map[string]bool{"API_KEY": true}, names)
}
