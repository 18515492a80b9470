package cmd

import (
	"fmt"
	"net"
)

// resolveHosts resolves every host identifier to a numeric address, returning
// a same-length slice with index correspondence preserved. The first
// resolution failure aborts the whole run: an unresolved host cannot be
// safely excluded from, or included in, the other hosts' peer lists.
func resolveHosts(hosts []string) ([]string, error) {
	ips := make([]string, 0, len(hosts))
	for _, host := range hosts {
		addrs, err := lookupIPFunc(host)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve %s: %w", host, err)
		}
		if len(addrs) == 0 {
			return nil, fmt.Errorf("unable to resolve %s: no addresses returned", host)
		}
		ips = append(ips, pickAddress(addrs))
	}
	return ips, nil
}

// pickAddress prefers the first IPv4 address, falling back to the first
// address of any family.
func pickAddress(addrs []net.IP) string {
	for _, a := range addrs {
		if v4 := a.To4(); v4 != nil {
			return v4.String()
		}
	}
	return addrs[0].String()
}
