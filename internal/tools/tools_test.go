package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HendryAvila/itra-gateway/internal/export"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap/zaptest"
)

// --- Test helpers ---

// isErrorResult checks if a CallToolResult is an error result.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func answer(t *testing.T, tool *AnswerTool, id, value string) *mcp.CallToolResult {
	t.Helper()
	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"question_id": id,
		"answer":      value,
	}))
	if err != nil {
		t.Fatalf("answer %s=%s: unexpected error: %v", id, value, err)
	}
	return result
}

// completeGateway answers every question with the scenario B values.
func completeGateway(t *testing.T, tool *AnswerTool) {
	t.Helper()
	for _, kv := range [][2]string{
		{"asset_type", "it_system"},
		{"B.2", "Yes"},
		{"T.6", "No"},
		{"B.3", "Yes"},
		{"S.1", "2"},
		{"B.13", "High"},
		{"D.1", "Yes"},
		{"D.2", "Yes"},
	} {
		if r := answer(t, tool, kv[0], kv[1]); isErrorResult(r) {
			t.Fatalf("answer %s rejected: %s", kv[0], getResultText(r))
		}
	}
}

// --- AnswerTool ---

func TestAnswerTool_Definition(t *testing.T) {
	tool := NewAnswerTool(gateway.NewTracker(), zaptest.NewLogger(t))
	def := tool.Definition()
	if def.Name != "itra_answer" {
		t.Errorf("tool name = %q, want itra_answer", def.Name)
	}
}

func TestAnswerTool_RecordsCanonicalValue(t *testing.T) {
	tracker := gateway.NewTracker()
	tool := NewAnswerTool(tracker, zaptest.NewLogger(t))

	result := answer(t, tool, "asset_type", "💻 Software Application")
	if isErrorResult(result) {
		t.Fatalf("unexpected error result: %s", getResultText(result))
	}

	got, ok := tracker.Current().Answers.Get(gateway.QuestionAssetType)
	if !ok || got != gateway.AssetITSystem {
		t.Errorf("stored answer = %q, want %q", got, gateway.AssetITSystem)
	}

	text := getResultText(result)
	for _, want := range []string{"Asset Type recorded", "Base Risk Assessment", "Next Question", "B.2"} {
		if !strings.Contains(text, want) {
			t.Errorf("response should contain %q", want)
		}
	}
}

func TestAnswerTool_CloudMapsToMultipleNetworks(t *testing.T) {
	tracker := gateway.NewTracker()
	tool := NewAnswerTool(tracker, zaptest.NewLogger(t))
	completeGateway(t, tool)

	answer(t, tool, "S.1", "☁️ Cloud-Based - Internet/cloud hosted")
	if got, _ := tracker.Current().Answers.Get(gateway.QuestionConnectivity); got != gateway.ConnectivityMultiple {
		t.Errorf("S.1 = %q, want %q", got, gateway.ConnectivityMultiple)
	}
}

func TestAnswerTool_NumericAnswer(t *testing.T) {
	tracker := gateway.NewTracker()
	tool := NewAnswerTool(tracker, zaptest.NewLogger(t))
	completeGateway(t, tool)

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"question_id": "S.1",
		"answer":      float64(1),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("numeric S.1 should be accepted: %s", getResultText(result))
	}
	if got, _ := tracker.Current().Answers.Get(gateway.QuestionConnectivity); got != gateway.ConnectivityInternal {
		t.Errorf("S.1 = %q, want %q", got, gateway.ConnectivityInternal)
	}
}

func TestAnswerTool_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{"missing question", map[string]interface{}{"answer": "Yes"}, "'question_id' is required"},
		{"missing answer", map[string]interface{}{"question_id": "asset_type"}, "'answer' is required"},
		{"unknown question", map[string]interface{}{"question_id": "Z.9", "answer": "Yes"}, "Unknown question"},
		{"unknown option", map[string]interface{}{"question_id": "asset_type", "answer": "spaceship"}, "must be one of"},
		{"locked phase", map[string]interface{}{"question_id": "B.2", "answer": "Yes"}, "still locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := gateway.NewTracker()
			tool := NewAnswerTool(tracker, zaptest.NewLogger(t))

			result, err := tool.Handle(context.Background(), callRequest(tt.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !isErrorResult(result) {
				t.Fatal("expected error result")
			}
			if text := getResultText(result); !strings.Contains(text, tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", text, tt.wantMsg)
			}
			if tracker.Current().Answers.Len() != 0 {
				t.Error("rejected answers must not be recorded")
			}
		})
	}
}

func TestAnswerTool_UnlocksPhasesInOrder(t *testing.T) {
	tool := NewAnswerTool(gateway.NewTracker(), zaptest.NewLogger(t))

	answer(t, tool, "asset_type", "it_infrastructure")
	if r := answer(t, tool, "S.1", "1"); !isErrorResult(r) {
		t.Error("phase 3 should stay locked until phase 2 is complete")
	}

	answer(t, tool, "B.2", "No")
	answer(t, tool, "T.6", "No")
	answer(t, tool, "B.3", "No")
	if r := answer(t, tool, "S.1", "1"); isErrorResult(r) {
		t.Errorf("phase 3 should be unlocked: %s", getResultText(r))
	}
}

func TestAnswerTool_ReportsGatewayComplete(t *testing.T) {
	tool := NewAnswerTool(gateway.NewTracker(), zaptest.NewLogger(t))
	completeGateway(t, tool)

	text := getResultText(answer(t, tool, "D.2", "Yes"))
	if !strings.Contains(text, "Gateway Complete") {
		t.Error("response should announce gateway completion")
	}
	if !strings.Contains(text, "Unchanged") {
		t.Error("repeating the same answer should be reported as unchanged")
	}
	if !strings.Contains(text, "**Total questions:** 53") {
		t.Error("scenario B should total 53 questions")
	}
}

// --- QuestionsTool ---

func TestQuestionsTool_AllPhases(t *testing.T) {
	tool := NewQuestionsTool(gateway.NewTracker())
	result, err := tool.Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := getResultText(result)
	for _, id := range gateway.QuestionOrder {
		if !strings.Contains(text, "`"+string(id)+"`") {
			t.Errorf("listing should include %s", id)
		}
	}
	if !strings.Contains(text, "🔒 locked") {
		t.Error("phases 2 and 3 should be shown as locked")
	}
}

func TestQuestionsTool_SinglePhase(t *testing.T) {
	tool := NewQuestionsTool(gateway.NewTracker())
	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{"phase": float64(2)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := getResultText(result)
	if !strings.Contains(text, "Major Risk Categories") {
		t.Error("phase 2 title missing")
	}
	if strings.Contains(text, "`asset_type`") {
		t.Error("phase 1 questions should not be listed")
	}
}

func TestQuestionsTool_UnknownPhase(t *testing.T) {
	tool := NewQuestionsTool(gateway.NewTracker())
	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{"phase": float64(7)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("unknown phase should be an error result")
	}
}

// --- StatusTool ---

func TestStatusTool_Empty(t *testing.T) {
	tool := NewStatusTool(gateway.NewTracker())
	result, err := tool.Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := getResultText(result)
	for _, want := range []string{"No answers yet", "0% complete", "asset_type"} {
		if !strings.Contains(text, want) {
			t.Errorf("status should contain %q", want)
		}
	}
}

func TestStatusTool_ShowsDisplayValues(t *testing.T) {
	tracker := gateway.NewTracker()
	completeGateway(t, NewAnswerTool(tracker, zaptest.NewLogger(t)))

	result, err := NewStatusTool(tracker).Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := getResultText(result)
	for _, want := range []string{"🌐 Multiple Networks", "🔴 High Impact", "100% complete", "All gateway questions are answered"} {
		if !strings.Contains(text, want) {
			t.Errorf("status should contain %q", want)
		}
	}
}

// --- PlanTool ---

func TestPlanTool_EmptyAnswers(t *testing.T) {
	result, err := NewPlanTool(gateway.NewTracker()).Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := getResultText(result)
	for _, want := range []string{"not complete", "**Total questions:** 25", "**Enabled tracks:** 1", "12-25 minutes"} {
		if !strings.Contains(text, want) {
			t.Errorf("plan should contain %q", want)
		}
	}
}

func TestPlanTool_CompleteGateway(t *testing.T) {
	tracker := gateway.NewTracker()
	completeGateway(t, NewAnswerTool(tracker, zaptest.NewLogger(t)))

	result, err := NewPlanTool(tracker).Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := getResultText(result)
	if strings.Contains(text, "not complete") {
		t.Error("complete gateway should not warn")
	}
	for _, want := range []string{"**Total questions:** 53", "**Enabled tracks:** 6", "26-53 minutes", "GxP Compliance Assessment"} {
		if !strings.Contains(text, want) {
			t.Errorf("plan should contain %q", want)
		}
	}
}

// --- ExportTool ---

func TestExportTool_SavesDocument(t *testing.T) {
	tracker := gateway.NewTracker()
	completeGateway(t, NewAnswerTool(tracker, zaptest.NewLogger(t)))

	dir := filepath.Join(t.TempDir(), "exports")
	tool := NewExportTool(tracker, export.NewExporter(dir, export.FormatJSON), zaptest.NewLogger(t))

	result, err := tool.Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected error result: %s", getResultText(result))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".json") {
		t.Fatalf("expected one JSON export, got %v", entries)
	}

	text := getResultText(result)
	for _, want := range []string{"itra_assessment_config_", `"gateway_answers"`, "**Total questions:** 53"} {
		if !strings.Contains(text, want) {
			t.Errorf("export response should contain %q", want)
		}
	}

	if tracker.Current().Answers.Len() != len(gateway.QuestionOrder) {
		t.Error("export must not change the answers")
	}
}

func TestExportTool_YAMLWithoutSaving(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	tool := NewExportTool(gateway.NewTracker(), export.NewExporter(dir, export.FormatJSON), zaptest.NewLogger(t))

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"format": "yaml",
		"save":   false,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := getResultText(result)
	if !strings.Contains(text, "```yaml") || !strings.Contains(text, "assessment_metadata:") {
		t.Error("response should carry the YAML document")
	}
	if !strings.Contains(text, "incomplete gateway") {
		t.Error("response should warn about the incomplete gateway")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("save=false must not create the export directory")
	}
}

func TestExportTool_InvalidFormat(t *testing.T) {
	tool := NewExportTool(gateway.NewTracker(), export.NewExporter(t.TempDir(), ""), zaptest.NewLogger(t))
	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{"format": "xml"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("unknown format should be an error result")
	}
}

func TestExportTool_WriteFailureKeepsAnswers(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tracker := gateway.NewTracker()
	completeGateway(t, NewAnswerTool(tracker, zaptest.NewLogger(t)))
	before := tracker.Current().Answers.Snapshot()

	tool := NewExportTool(tracker, export.NewExporter(blocker, export.FormatJSON), zaptest.NewLogger(t))
	result, err := tool.Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("write failure should be an error result")
	}

	after := tracker.Current().Answers.Snapshot()
	if len(after) != len(before) {
		t.Error("answers changed after a failed export")
	}
}

// --- ResetTool ---

func TestResetTool(t *testing.T) {
	tracker := gateway.NewTracker()
	completeGateway(t, NewAnswerTool(tracker, zaptest.NewLogger(t)))
	oldID := tracker.Current().ID

	tool := NewResetTool(tracker, zaptest.NewLogger(t))

	result, err := tool.Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isErrorResult(result) {
		t.Error("reset without confirm should be rejected")
	}
	if tracker.Current().ID != oldID {
		t.Error("unconfirmed reset must keep the session")
	}

	result, err = tool.Handle(context.Background(), callRequest(map[string]interface{}{"confirm": true}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected error result: %s", getResultText(result))
	}
	if tracker.Current().ID == oldID {
		t.Error("confirmed reset should start a new session")
	}
	if tracker.Current().Answers.Len() != 0 {
		t.Error("new session should have no answers")
	}
	if !strings.Contains(getResultText(result), "**Discarded answers:** 8") {
		t.Error("response should report the discarded answer count")
	}
}
