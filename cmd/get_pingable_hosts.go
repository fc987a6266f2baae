package cmd

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-ping/ping"
	"github.com/spf13/cobra"

	"github.com/panw-tools/panw-utils/internal/format"
	"github.com/panw-tools/panw-utils/internal/panos"
)

var (
	pingNumAddresses int
	pingTimeout      int
)

// getPingableHostsCmd represents the 'get pingable-hosts' command
var getPingableHostsCmd = &cobra.Command{
	Use:   "pingable-hosts [flags] <host>",
	Short: "Collect pingable IP addresses from a firewall ARP cache",
	Long: `Collect pingable IP addresses from a firewall ARP cache

Examples:
  > panw-utils get pingable-hosts fw01.example.com
  > panw-utils get pingable-hosts -n 4 fw01.example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("exactly one firewall must be specified")
		}
		firewall := args[0]

		cred, err := resolveCredential(cmd, firewall)
		if err != nil {
			return err
		}

		start := time.Now()
		client := newClient(cred.Key)

		fmt.Fprintf(os.Stderr, "Downloading ARP cache from %v ... ", firewall)
		raw, err := client.Op(cmd.Context(), firewall, "<show><arp><entry name = 'all'/></arp></show>")
		if err != nil {
			format.Red.Fprintf(os.Stderr, "fail\n\n")
			return err
		}
		entries, err := panos.ParseArpCache(firewall, raw)
		if err != nil {
			format.Red.Fprintf(os.Stderr, "fail\n\n")
			return err
		}
		format.Green.Fprintf(os.Stderr, "success\n")

		// Group addresses by interface
		interfaces := make(map[string][]string)
		for _, e := range entries {
			interfaces[e.Interface] = append(interfaces[e.Interface], e.Address)
		}

		fmt.Fprintf(os.Stderr, "Pinging IP addresses ... ")
		var pingableHosts []string
		for _, addrs := range interfaces {
			pingableHosts = append(pingableHosts, pingableAddresses(addrs, pingNumAddresses, pingTimeout)...)
		}
		format.Green.Fprintf(os.Stderr, "success\n\n")

		sorted := make([]net.IP, 0, len(pingableHosts))
		for _, ip := range pingableHosts {
			sorted = append(sorted, net.ParseIP(ip))
		}
		sort.Slice(sorted, func(i, j int) bool {
			return bytes.Compare(sorted[i], sorted[j]) < 0
		})

		for _, addr := range sorted {
			fmt.Println(addr)
		}

		elapsed := time.Since(start)
		fmt.Fprintf(os.Stderr, "\n Collection complete: Discovered %d pingable addresses in %.3f seconds\n", len(pingableHosts), elapsed.Seconds())
		return nil
	},
}

func init() {
	getCmd.AddCommand(getPingableHostsCmd)

	getPingableHostsCmd.Flags().StringVarP(&apiKey, "key", "k", apiKey, "API key")
	getPingableHostsCmd.Flags().StringVarP(&user, "user", "u", user, "PAN admin user")
	getPingableHostsCmd.Flags().IntVarP(&pingNumAddresses, "num-addresses", "n", 2, "number of addresses per interface")
	getPingableHostsCmd.Flags().IntVarP(&pingTimeout, "ping-timeout", "T", 250, "ICMP timeout in milliseconds")
}

// pingableAddresses pings addrs in order, keeping at most numAddrs
// responders.
func pingableAddresses(addrs []string, numAddrs, timeout int) []string {
	var pingable []string
	for _, addr := range addrs {
		if strings.HasPrefix(addr, "0") {
			continue
		}
		stats, err := pingAddr(addr, timeout)
		if err != nil {
			continue
		}
		if stats.PacketLoss == 0 {
			pingable = append(pingable, addr)
		}
		if len(pingable) == numAddrs {
			break
		}
	}
	return pingable
}

func pingAddr(addr string, timeout int) (*ping.Statistics, error) {
	pinger, err := ping.NewPinger(addr)
	if err != nil {
		return nil, err
	}
	pinger.SetPrivileged(true)
	pinger.Timeout = time.Duration(timeout) * time.Millisecond
	pinger.Count = 1

	if err := pinger.Run(); err != nil {
		return nil, fmt.Errorf("ICMP socket operations require 'sudo': %w", err)
	}
	return pinger.Statistics(), nil
}
