package cmd

// remoteVTEPs returns every resolved address except the host's own, in input
// order. Every occurrence of the host's own address is excluded.
func remoteVTEPs(ips []string, self string) []string {
	peers := make([]string, 0, len(ips))
	for _, ip := range ips {
		if ip == self {
			continue
		}
		peers = append(peers, ip)
	}
	return peers
}
