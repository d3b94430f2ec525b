package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/pto-calendar/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ptocal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
company: Initech
employee: Ada
year: 2024
policy:
  vacation: 15
  vacation_accrual: true
  vacation_carryin: 2
  sick: 12
  extra_paycheck_months: [5, 11]
events:
  - {month: 7, day: 4, type: h, days: 1, description: Independence Day}
  - {month: 7, day: 5, type: v, days: 0.5, description: Long weekend}
`

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "Initech", cfg.Company)
	assert.Equal(t, "Ada", cfg.Employee)
	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, 15.0, cfg.Policy.Vacation)
	assert.True(t, cfg.Policy.VacationAccrual)
	assert.Equal(t, 2.0, cfg.Policy.VacationCarryIn)
	assert.Equal(t, []int{5, 11}, cfg.Policy.ExtraPaycheckMonths)
	require.Len(t, cfg.Events, 2)
	assert.Equal(t, "h", cfg.Events[0].Type)
	assert.Equal(t, 0.5, cfg.Events[1].Days)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PTOCAL_EMPLOYEE", "Grace")

	cfg, err := config.Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "Grace", cfg.Employee)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	_, err := config.Load(writeConfig(t, "year: 2024\n"))
	assert.Error(t, err)
}

func TestLoad_RejectsDuplicateEvents(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
company: Initech
employee: Ada
year: 2024
events:
  - {month: 3, day: 15, type: v, days: 1}
  - {month: 3, day: 15, type: s, days: 1}
`))
	assert.ErrorContains(t, err, "duplicate event")
}

func TestLoad_RejectsImpossibleDay(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
company: Initech
employee: Ada
year: 2023
events:
  - {month: 2, day: 29, type: v, days: 1}
`))
	assert.ErrorContains(t, err, "day out of range")
}

func TestRecords(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	records := cfg.Records()
	require.Len(t, records, 2)
	assert.Equal(t, 7, records[0].Month)
	assert.Equal(t, 4, records[0].Day)
	assert.Equal(t, "h", records[0].Code)
	assert.Equal(t, "Independence Day", records[0].Description)
}
