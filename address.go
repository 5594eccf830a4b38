package headerutil

import "net/netip"

// AddressFamily identifies the kind of peer address a listener produced.
type AddressFamily int

const (
	// Start at 1 to avoid zero-value confusion.
	//
	// FamilyIPv4 is an IPv4 socket address.
	FamilyIPv4 AddressFamily = iota + 1
	// FamilyIPv6 is an IPv6 socket address.
	FamilyIPv6
	// FamilyPipe is a Unix-domain socket or named pipe. Pipe peers have no
	// place in an X-Forwarded-For chain and are skipped by AppendXff.
	FamilyPipe
)

// String returns the canonical text representation of f.
func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	case FamilyPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// Address is the peer address collaborator consumed by AppendXff. Only the
// family and the textual form matter to this package.
type Address interface {
	Family() AddressFamily
	String() string
}

type ipAddress struct {
	addr netip.Addr
}

// IPAddress wraps a netip.Addr as an Address.
//
// IPv4-mapped IPv6 addresses are unmapped so their textual form is the
// dotted quad peers actually expect to see in X-Forwarded-For.
func IPAddress(addr netip.Addr) Address {
	return ipAddress{addr: normalizeIP(addr)}
}

func (a ipAddress) Family() AddressFamily {
	switch {
	case !a.addr.IsValid():
		return 0
	case a.addr.Is4():
		return FamilyIPv4
	default:
		return FamilyIPv6
	}
}

func (a ipAddress) String() string {
	return a.addr.String()
}

type pipeAddress struct {
	path string
}

// PipeAddress wraps a Unix-domain socket or named-pipe path as an Address.
func PipeAddress(path string) Address {
	return pipeAddress{path: path}
}

func (a pipeAddress) Family() AddressFamily {
	return FamilyPipe
}

func (a pipeAddress) String() string {
	return a.path
}

func normalizeIP(ip netip.Addr) netip.Addr {
	if ip.Is4In6() {
		return ip.Unmap()
	}
	return ip
}
