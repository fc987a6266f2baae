package format

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panw-tools/panw-utils/internal/hosts"
)

func TestTerseRoundTripsThroughResolver(t *testing.T) {
	targets := []string{"fw01.example.com", "fw02.example.com", "fw03.example.com"}

	var out bytes.Buffer
	Terse(&out, targets)

	resolved, err := hosts.Resolve(nil, &out, "")
	require.NoError(t, err)
	assert.Equal(t, targets, resolved, "terse output must feed the next command's resolver unchanged")
}

func TestTerseNoHeader(t *testing.T) {
	var out bytes.Buffer
	Terse(&out, []string{"fw01"})
	assert.Equal(t, "fw01\n", out.String())
}

func TestTableAligned(t *testing.T) {
	var out bytes.Buffer
	tbl := NewTable(&out, "Host", "Serial")
	tbl.AddRow("fw01.example.com", "007200001055")
	tbl.AddRow("fw02", "007200001056")
	tbl.Print()

	assert.Contains(t, out.String(), "fw01.example.com")
	assert.Contains(t, out.String(), "007200001056")
}

func TestReportErrors(t *testing.T) {
	var out bytes.Buffer
	ReportErrors(&out, []error{
		fmt.Errorf("fw02: unable to connect to host"),
	})
	assert.Contains(t, out.String(), "fw02")

	out.Reset()
	ReportErrors(&out, nil)
	assert.Empty(t, out.String(), "no output when every host succeeded")
}
