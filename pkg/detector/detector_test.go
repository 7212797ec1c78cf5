package detector

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestDetector_DetectFromLines_LustreDebug(t *testing.T) {
	lines := []string{
		"00000100:00100000:2.0F:1323211069.870654:0:5555:0:(service.c:1706:ptlrpc_server_handle_req_in()) got req x1387383522230784",
		"00000100:00000001:2.0:1323211069.870691:0:5555:0:(service.c:1775:ptlrpc_server_handle_req_in()) Process entered",
		"00000400:00000200:1.0:1323211069.870701:0:871:0:(lib-move.c:1876:lnet_parse()) TRACE: 10.0.0.1@o2ib",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a format")
	}

	best := result.BestMatch()
	if best.Format.Name != "Lustre debug log" {
		t.Errorf("Expected Lustre debug log, got %s", best.Format.Name)
	}
	if best.Confidence != 1.0 {
		t.Errorf("Expected 100%% confidence, got %.1f%%", best.Confidence*100)
	}
	if best.Identifiers != 2 {
		t.Errorf("Expected 2 identifiers, got %d", best.Identifiers)
	}
	if best.SampleIdentifier != "5555" {
		t.Errorf("SampleIdentifier = %q, want 5555", best.SampleIdentifier)
	}
}

func TestDetector_DetectFromLines_LustreConsole(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
		id    string
	}{
		{
			name: "dmesg",
			lines: []string{
				"[ 8841.102234] Lustre: 5561:0:(client.c:1868:ptlrpc_expire_one_request()) Request sent has timed out",
				"[ 8841.102301] LustreError: 12345:0:(import.c:1003:ptlrpc_connect_interpret()) lustre-OST0000 went back in time",
			},
			want: "Lustre console (dmesg)",
			id:   "5561",
		},
		{
			name: "syslog",
			lines: []string{
				"Dec  6 14:37:49 oss1 kernel: LustreError: 5555:0:(ldlm_lib.c:2123:target_send_reply_msg()) @@@ processing error (-19)",
				"Dec  6 14:37:50 oss1 kernel: [ 8841.102234] Lustre: 871:0:(client.c:1868:ptlrpc_expire_one_request()) timed out",
			},
			want: "Lustre console (syslog)",
			id:   "5555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().DetectFromLines(tt.lines)
			best := result.BestMatch()
			if best == nil {
				t.Fatal("Expected to detect a format")
			}
			if best.Format.Name != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, best.Format.Name)
			}
			if best.SampleIdentifier != tt.id {
				t.Errorf("SampleIdentifier = %q, want %q", best.SampleIdentifier, tt.id)
			}
			if best.MatchCount != len(tt.lines) {
				t.Errorf("Expected %d matches, got %d", len(tt.lines), best.MatchCount)
			}
		})
	}
}

func TestDetector_DetectFromLines_Syslog(t *testing.T) {
	lines := []string{
		"Jun 14 15:16:01 combo sshd(pam_unix)[19939]: authentication failure",
		"Jun 14 15:16:02 combo sshd[19939]: Failed password for root",
		"Jun 14 15:16:03 combo sshd[19940]: Connection closed",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a format")
	}

	best := result.BestMatch()
	if best.Format.Name != "Syslog (BSD) pid" {
		t.Errorf("Expected Syslog (BSD) pid, got %s", best.Format.Name)
	}
	if best.MatchCount != 3 {
		t.Errorf("Expected 3 matches, got %d", best.MatchCount)
	}
	if best.Identifiers != 2 {
		t.Errorf("Expected 2 identifiers, got %d", best.Identifiers)
	}
}

func TestDetector_DetectFromLines_BracketedThread(t *testing.T) {
	lines := []string{
		"2024-01-15 10:30:00,123 [main] INFO Application started",
		"2024-01-15 10:30:05,456 [worker-3] DEBUG Processing request",
		"2024-01-15T10:30:10.789 [worker-3] INFO Request completed",
	}

	best := New().DetectFromLines(lines).BestMatch()
	if best == nil {
		t.Fatal("Expected to detect a format")
	}
	if best.Format.Name != "Bracketed thread name" {
		t.Errorf("Expected Bracketed thread name, got %s", best.Format.Name)
	}
	if best.SampleIdentifier != "main" {
		t.Errorf("SampleIdentifier = %q, want main", best.SampleIdentifier)
	}
}

func TestDetector_DetectFromLines_NoMatch(t *testing.T) {
	lines := []string{
		"This is not a log line",
		"Neither is this",
		"Debug log: 32 lines, 32 kept, 0 dropped, 0 bad.",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if result.HasMatch() {
		t.Errorf("Expected no match, got %s", result.BestMatch().Format.Name)
	}
	if result.BestMatch() != nil {
		t.Error("BestMatch() should be nil without matches")
	}
}

func TestDetector_DetectFromLines_EmptyInput(t *testing.T) {
	d := New()
	result := d.DetectFromLines([]string{})

	if result.HasMatch() {
		t.Error("Expected no match for empty input")
	}
	if result.SampledLines != 0 {
		t.Errorf("Expected 0 sampled lines, got %d", result.SampledLines)
	}
}

func TestDetector_DetectFromLines_MixedFormats(t *testing.T) {
	// Mostly debug log with a stray console line
	lines := []string{
		"00000100:00100000:2.0F:1323211069.870654:0:5555:0:(service.c:1706:ptlrpc_server_handle_req_in()) got req",
		"00000100:00000001:2.0:1323211069.870691:0:5555:0:(service.c:1775:ptlrpc_server_handle_req_in()) Process entered",
		"00000100:00000001:2.0:1323211069.870701:0:5561:0:(service.c:1775:ptlrpc_server_handle_req_in()) Process entered",
		"[ 8841.102234] Lustre: 5561:0:(client.c:1868:ptlrpc_expire_one_request()) Request sent has timed out",
	}

	result := New().DetectFromLines(lines)

	if len(result.Matches) != 2 {
		t.Fatalf("Expected 2 matching formats, got %d", len(result.Matches))
	}
	if result.BestMatch().Format.Name != "Lustre debug log" {
		t.Errorf("Expected Lustre debug log first, got %s", result.BestMatch().Format.Name)
	}
	if result.BestMatch().Confidence != 0.75 {
		t.Errorf("Expected 75%% confidence, got %.1f%%", result.BestMatch().Confidence*100)
	}
	if result.MatchedLines != 3 {
		t.Errorf("MatchedLines = %d, want 3", result.MatchedLines)
	}
}

func TestDetector_WithSampleSize(t *testing.T) {
	d := New(WithSampleSize(50))
	if d.sampleSize != 50 {
		t.Errorf("Expected sample size 50, got %d", d.sampleSize)
	}
}

func TestDetector_WithSampleSize_Invalid(t *testing.T) {
	d := New(WithSampleSize(-1))
	if d.sampleSize != 100 {
		t.Errorf("Expected default sample size 100, got %d", d.sampleSize)
	}
}

func TestDetector_WithFormats(t *testing.T) {
	custom := &IdentifierFormat{Name: "custom", PatternStr: `^tid=(\d+)`, Group: 1}
	custom.Pattern = regexp.MustCompile(custom.PatternStr)
	d := New(WithFormats([]*IdentifierFormat{custom}))
	if len(d.formats) != 1 || d.formats[0].Name != "custom" {
		t.Errorf("formats = %v, want only custom", d.formats)
	}

	d = New(WithFormats(nil))
	if len(d.formats) != len(DefaultFormats()) {
		t.Error("WithFormats(nil) should keep the defaults")
	}
}

func TestDetector_DetectFromReader_SampleLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("\n\n")
	for i := 0; i < 20; i++ {
		sb.WriteString("00000100:00000001:2.0:1323211069.870691:0:5555:0:(service.c:1775:ptlrpc_server_handle_req_in()) Process entered\r\n")
	}

	d := New(WithSampleSize(5))
	result, err := d.DetectFromReader(context.Background(), strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("DetectFromReader failed: %v", err)
	}
	if result.SampledLines != 5 {
		t.Errorf("SampledLines = %d, want 5", result.SampledLines)
	}
	if result.MatchedLines != 5 {
		t.Errorf("MatchedLines = %d, want 5", result.MatchedLines)
	}
}

func TestDetector_DetectFromReader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().DetectFromReader(ctx, strings.NewReader("a\nb\n"))
	if err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestDetector_DetectFromFile(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "llogcolor_files", "input-multi_tid-twice")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Required test file not found: %s", path)
	}

	result, err := New().DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile failed: %v", err)
	}

	best := result.BestMatch()
	if best == nil || best.Format.Name != "Lustre debug log" {
		t.Fatalf("BestMatch() = %v, want Lustre debug log", best)
	}
	if result.SampledLines != 33 || best.MatchCount != 32 {
		t.Errorf("sampled %d, matched %d, want 33 and 32", result.SampledLines, best.MatchCount)
	}
	if best.Identifiers != 4 {
		t.Errorf("Identifiers = %d, want 4", best.Identifiers)
	}
}

func TestDetector_DetectFromFile_NotFound(t *testing.T) {
	_, err := New().DetectFromFile(context.Background(), "/nonexistent/file.log")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestDefaultFormats(t *testing.T) {
	formats := DefaultFormats()
	if len(formats) == 0 {
		t.Fatal("No default formats")
	}

	for _, f := range formats {
		if f.Pattern == nil {
			t.Errorf("%s: pattern not compiled", f.Name)
			continue
		}
		if f.Pattern.NumSubexp() < f.Group {
			t.Errorf("%s: group %d beyond %d capture groups", f.Name, f.Group, f.Pattern.NumSubexp())
		}

		// Every example must be recognized by its own format
		for _, ex := range f.Examples {
			if _, ok := f.Extractor().Extract(ex); !ok {
				t.Errorf("%s: example not matched: %s", f.Name, ex)
			}
		}
	}
}
