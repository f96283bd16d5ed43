package store

import (
	"strings"
	"testing"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

func TestParseSentinelAddrs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
		entry   string // malformed entry expected in the error
	}{
		{
			name: "single entry",
			raw:  "10.0.0.1:26379",
			want: []string{"10.0.0.1:26379"},
		},
		{
			name: "multiple entries",
			raw:  "s1:26379,s2:26379,s3:26379",
			want: []string{"s1:26379", "s2:26379", "s3:26379"},
		},
		{
			name: "whitespace around entries",
			raw:  " s1:26379 , s2:26380 ",
			want: []string{"s1:26379", "s2:26380"},
		},
		{
			name: "trailing comma is skipped",
			raw:  "s1:26379,",
			want: []string{"s1:26379"},
		},
		{
			name: "ipv6 entry",
			raw:  "[::1]:26379",
			want: []string{"[::1]:26379"},
		},
		{
			name:    "missing port",
			raw:     "sentinel-host",
			wantErr: true,
			entry:   "sentinel-host",
		},
		{
			name:    "empty host",
			raw:     ":26379",
			wantErr: true,
			entry:   ":26379",
		},
		{
			name:    "non-numeric port",
			raw:     "s1:alpha",
			wantErr: true,
			entry:   "s1:alpha",
		},
		{
			name:    "one bad entry fails the whole list",
			raw:     "s1:26379,bad,s3:26379",
			wantErr: true,
			entry:   "bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSentinelAddrs(tt.raw)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSentinelAddrs(%q) expected error, got %v", tt.raw, got)
				}
				if !domain.IsDomainError(err, "RG-CONF-1001") {
					t.Errorf("error code = %q, want RG-CONF-1001", domain.GetErrorCode(err))
				}
				if !strings.Contains(err.Error(), tt.entry) {
					t.Errorf("error %q should name entry %q", err.Error(), tt.entry)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseSentinelAddrs(%q) error = %v", tt.raw, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("addr %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseDatabase(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "plain index", raw: "3", want: 3},
		{name: "zero", raw: "0", want: 0},
		{name: "whitespace", raw: " 2 ", want: 2},
		{name: "empty coerces to zero", raw: "", want: 0},
		{name: "garbage coerces to zero", raw: "abc", want: 0},
		{name: "float coerces to zero", raw: "1.5", want: 0},
		{name: "negative coerces to zero", raw: "-1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDatabase(tt.raw); got != tt.want {
				t.Errorf("parseDatabase(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNew_AutoPipeliningFlag(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		want    bool
	}{
		{name: "exactly true", setting: "true", want: true},
		{name: "uppercase is not true", setting: "TRUE", want: false},
		{name: "one is not true", setting: "1", want: false},
		{name: "empty", setting: "", want: false},
		{name: "padded is not true", setting: " true", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Options{AutoPipelining: tt.setting})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer c.Close()

			if got := c.AutoPipelining(); got != tt.want {
				t.Errorf("AutoPipelining() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_SentinelValidationFailsFast(t *testing.T) {
	_, err := New(Options{SentinelAddrs: "good:26379,nocolon"})
	if err == nil {
		t.Fatal("New() should fail on a malformed sentinel entry")
	}
	if !domain.IsDomainError(err, "RG-CONF-1001") {
		t.Errorf("error code = %q, want RG-CONF-1001", domain.GetErrorCode(err))
	}
	if !strings.Contains(err.Error(), "nocolon") {
		t.Errorf("error %q should name the malformed entry", err.Error())
	}
}

func TestNew_DirectDefaults(t *testing.T) {
	// No connection is made at construction time, so defaults are safe to
	// exercise without a running store.
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if c.rdb == nil {
		t.Fatal("client not constructed")
	}
	if got := c.rdb.Options().Addr; got != "localhost:6379" {
		t.Errorf("Addr = %q, want localhost:6379", got)
	}
	if got := c.rdb.Options().DB; got != 0 {
		t.Errorf("DB = %d, want 0", got)
	}
}

func TestNew_DirectExplicit(t *testing.T) {
	c, err := New(Options{Host: "redis.internal", Port: 6380, Database: "4"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if got := c.rdb.Options().Addr; got != "redis.internal:6380" {
		t.Errorf("Addr = %q, want redis.internal:6380", got)
	}
	if got := c.rdb.Options().DB; got != 4 {
		t.Errorf("DB = %d, want 4", got)
	}
}
