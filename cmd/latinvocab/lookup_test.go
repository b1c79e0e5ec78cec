package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/latinvocab/internal/models"
	"github.com/lehmann314159/latinvocab/internal/storetest"
)

func sampleResult() *models.LookupResult {
	var result models.LookupResult
	result.Add(models.Adverb, []models.DictionaryEntry{
		{Words: "nōn", Definition: "not"},
	})
	result.Add(models.Preposition, []models.DictionaryEntry{
		{Words: "ad (+ accusative)", Definition: "to, toward"},
		{Words: "in (+ ablative)", Definition: "in, on"},
	})
	return &result
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "text", sampleResult()))

	want := "Adverbs\n" +
		"  nōn  not\n" +
		"\n" +
		"Prepositions\n" +
		"  ad (+ accusative)  to, toward\n" +
		"  in (+ ablative)    in, on\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "", &models.LookupResult{}))

	assert.Equal(t, "No entries found.\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "JSON", sampleResult()))

	assert.JSONEq(t, `{
		"categories": ["adverb", "preposition"],
		"entries": [
			[{"words": "nōn", "definition": "not"}],
			[
				{"words": "ad (+ accusative)", "definition": "to, toward"},
				{"words": "in (+ ablative)", "definition": "in, on"}
			]
		]
	}`, buf.String())
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "csv", sampleResult()))

	assert.Equal(t,
		"category,words,definition\n"+
			"Adverbs,nōn,not\n"+
			"Prepositions,ad (+ accusative),\"to, toward\"\n"+
			"Prepositions,in (+ ablative),\"in, on\"\n",
		buf.String())
}

func TestRender_UnknownFormat(t *testing.T) {
	err := render(&bytes.Buffer{}, "yaml", sampleResult())
	assert.ErrorContains(t, err, "unknown output format")
}

func TestChapterCommand(t *testing.T) {
	path := storetest.NewDatabase(t, storetest.Vocabulary()...)
	t.Setenv("CONFIG_PATH", "")
	t.Cleanup(func() {
		dbPath, outputFormat, categoryFilter = "", "text", nil
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--db", path, "-o", "csv", "chapter", "3", "-c", "preposition"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t,
		"category,words,definition\n"+
			"Prepositions,ad (+ accusative),\"to, toward\"\n"+
			"Prepositions,in (+ ablative),\"in, on\"\n",
		out.String())
}

func TestChapterCommand_InvalidChapter(t *testing.T) {
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"chapter", "40"})

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, models.ErrInvalidChapter)
}
