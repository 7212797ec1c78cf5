package detector

import (
	"regexp"

	"github.com/llnl/llogcolor/pkg/config"
	"github.com/llnl/llogcolor/pkg/parser"
)

// IdentifierFormat is a known log layout and where its thread identifier sits.
type IdentifierFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for config output
	Group      int            // Capture group holding the identifier
	Examples   []string       // Example lines
}

// Extractor returns an extractor for this format.
func (f *IdentifierFormat) Extractor() *parser.IdentifierExtractor {
	return parser.NewIdentifierExtractor(f.Pattern, f.Group)
}

// DefaultFormats returns the built-in formats to detect.
// Formats are ordered roughly by specificity (more specific patterns first).
func DefaultFormats() []*IdentifierFormat {
	formats := []*IdentifierFormat{
		// lctl debug_kernel dump
		{
			Name:       "Lustre debug log",
			PatternStr: config.DefaultIdentifierPattern,
			Group:      config.DefaultIdentifierGroup,
			Examples: []string{
				"00000100:00100000:2.0F:1323211069.870654:0:5555:0:(service.c:1706:ptlrpc_server_handle_req_in()) got req",
			},
		},
		// Console messages as forwarded to syslog
		{
			Name:       "Lustre console (syslog)",
			PatternStr: `^\w{3} [ \d]\d \d{2}:\d{2}:\d{2} \S+ kernel: (?:\[\s*\d+\.\d+\] )?Lustre(?:Error)?: (\d+):\d+:\(`,
			Group:      1,
			Examples: []string{
				"Dec  6 14:37:49 oss1 kernel: LustreError: 5555:0:(ldlm_lib.c:2123:target_send_reply_msg()) @@@ processing error (-19)",
			},
		},
		// Console messages as shown by dmesg
		{
			Name:       "Lustre console (dmesg)",
			PatternStr: `^\[\s*\d+\.\d+\] Lustre(?:Error)?: (\d+):\d+:\(`,
			Group:      1,
			Examples: []string{
				"[ 8841.102234] Lustre: 5561:0:(client.c:1868:ptlrpc_expire_one_request()) Request sent has timed out",
			},
		},
		// BSD syslog with a program pid
		{
			Name:       "Syslog (BSD) pid",
			PatternStr: `^\w{3} [ \d]\d \d{2}:\d{2}:\d{2} \S+ [^\s\[:]+(?:\([^)]*\))?\[(\d+)\]:`,
			Group:      1,
			Examples: []string{
				"Jun 14 15:16:01 combo sshd(pam_unix)[19939]: authentication failure",
			},
		},
		// Application logs with a bracketed thread name after the timestamp
		{
			Name:       "Bracketed thread name",
			PatternStr: `^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:[.,]\d+)?\s+\[([^\]]+)\]`,
			Group:      1,
			Examples: []string{
				"2024-01-15 10:30:00,123 [worker-3] INFO Request completed",
			},
		},
	}

	// Compile patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
