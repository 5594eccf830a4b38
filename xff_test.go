package headerutil

import (
	"net/http"
	"net/netip"
	"testing"
)

func TestAppendXff(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		address  Address
		want     string
	}{
		{
			name:    "creates header when absent",
			address: IPAddress(netip.MustParseAddr("127.0.0.1")),
			want:    "127.0.0.1",
		},
		{
			name:     "appends with comma-space join",
			existing: "10.0.0.1",
			address:  IPAddress(netip.MustParseAddr("127.0.0.1")),
			want:     "10.0.0.1, 127.0.0.1",
		},
		{
			name:     "IPv6 peer",
			existing: "10.0.0.1",
			address:  IPAddress(netip.MustParseAddr("2001:db8::1")),
			want:     "10.0.0.1, 2001:db8::1",
		},
		{
			name:     "IPv4-mapped peer appended as dotted quad",
			existing: "10.0.0.1",
			address:  IPAddress(netip.MustParseAddr("::ffff:127.0.0.1")),
			want:     "10.0.0.1, 127.0.0.1",
		},
		{
			name:     "pipe peer leaves header unmodified",
			existing: "10.0.0.1",
			address:  PipeAddress("/foo"),
			want:     "10.0.0.1",
		},
		{
			name:    "pipe peer does not create header",
			address: PipeAddress("/foo"),
			want:    "",
		},
		{
			name:     "nil address is a no-op",
			existing: "10.0.0.1",
			address:  nil,
			want:     "10.0.0.1",
		},
		{
			name:     "invalid IP address is a no-op",
			existing: "10.0.0.1",
			address:  IPAddress(netip.Addr{}),
			want:     "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := make(http.Header)
			if tt.existing != "" {
				headers.Set("X-Forwarded-For", tt.existing)
			}

			AppendXff(headers, tt.address)

			if got := headers.Get("X-Forwarded-For"); got != tt.want {
				t.Errorf("x-forwarded-for = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLastAddressFromXff(t *testing.T) {
	tests := []struct {
		name string
		xff  []string
		want string
	}{
		{
			name: "header absent",
			xff:  nil,
			want: "",
		},
		{
			name: "empty value",
			xff:  []string{""},
			want: "",
		},
		{
			name: "single address",
			xff:  []string{"34.0.0.1"},
			want: "34.0.0.1",
		},
		{
			name: "last of multiple addresses",
			xff:  []string{"34.0.0.1, 34.0.0.1, 10.0.0.1"},
			want: "10.0.0.1",
		},
		{
			name: "surrounding whitespace trimmed",
			xff:  []string{"34.0.0.1,  10.0.0.1  "},
			want: "10.0.0.1",
		},
		{
			name: "trailing comma yields empty entry",
			xff:  []string{"34.0.0.1,"},
			want: "",
		},
		{
			name: "no validation of trailing token",
			xff:  []string{"34.0.0.1, not-an-ip"},
			want: "not-an-ip",
		},
		{
			name: "repeated headers use final value",
			xff:  []string{"34.0.0.1", "50.0.0.1, 10.0.0.1"},
			want: "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := make(http.Header)
			for _, value := range tt.xff {
				headers.Add("X-Forwarded-For", value)
			}

			if got := LastAddressFromXff(headers); got != tt.want {
				t.Errorf("LastAddressFromXff(xff=%q) = %q, want %q", tt.xff, got, tt.want)
			}
		})
	}
}

func TestAppendXffThenLastAddress(t *testing.T) {
	headers := make(http.Header)

	AppendXff(headers, IPAddress(netip.MustParseAddr("34.0.0.1")))
	AppendXff(headers, IPAddress(netip.MustParseAddr("10.0.0.1")))

	if got := LastAddressFromXff(headers); got != "10.0.0.1" {
		t.Errorf("LastAddressFromXff() = %q, want %q", got, "10.0.0.1")
	}
}
