package srp_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"gotest.tools/assert"

	"github.com/srptools/srpboot/srp"
)

func TestLoadHandoffRecord(t *testing.T) {
	t.Run("should read both records and trim trailing whitespace", func(t *testing.T) {
		archive := afero.NewMemMapFs()
		afero.WriteFile(archive, "nextNroPath", []byte("sdmc:/switch/retroarch/retroarch.nro\r\n"), 0644)
		afero.WriteFile(archive, "nextArgv", []byte("-L core.so game.sfc \t\n"), 0644)

		record := srp.LoadHandoffRecord(archive, "nextNroPath", "nextArgv")

		assert.Equal(t, record.TargetPath, "sdmc:/switch/retroarch/retroarch.nro")
		assert.Equal(t, record.Argv, "-L core.so game.sfc")
	})

	t.Run("should yield empty fields for missing records", func(t *testing.T) {
		archive := afero.NewMemMapFs()

		record := srp.LoadHandoffRecord(archive, "nextNroPath", "nextArgv")

		assert.Equal(t, record.TargetPath, "")
		assert.Equal(t, record.Argv, "")
	})

	t.Run("should tolerate a missing argv record alone", func(t *testing.T) {
		archive := afero.NewMemMapFs()
		afero.WriteFile(archive, "nextNroPath", []byte("sdmc:/switch/app.nro\n"), 0644)

		record := srp.LoadHandoffRecord(archive, "nextNroPath", "nextArgv")

		assert.Equal(t, record.TargetPath, "sdmc:/switch/app.nro")
		assert.Equal(t, record.Argv, "")
	})

	t.Run("should cap each record at its byte limit", func(t *testing.T) {
		archive := afero.NewMemMapFs()
		long := strings.Repeat("a", srp.MaxTargetRecordLen+100)
		afero.WriteFile(archive, "nextNroPath", []byte(long), 0644)

		record := srp.LoadHandoffRecord(archive, "nextNroPath", "nextArgv")

		assert.Equal(t, len(record.TargetPath), srp.MaxTargetRecordLen)
	})

	t.Run("should preserve interior whitespace in the argv string", func(t *testing.T) {
		archive := afero.NewMemMapFs()
		afero.WriteFile(archive, "nextArgv", []byte("-L core.so  two  spaces\n"), 0644)

		record := srp.LoadHandoffRecord(archive, "nextNroPath", "nextArgv")

		assert.Equal(t, record.Argv, "-L core.so  two  spaces")
	})
}
