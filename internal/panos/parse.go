package panos

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// One result type per query kind. Commands decode into these rather than
// poking at the raw XML.

// Device is a firewall managed by a Panorama.
type Device struct {
	Hostname        string `xml:"hostname"`
	Address         string `xml:"ip-address"`
	Serial          string `xml:"serial"`
	Model           string `xml:"model"`
	Connected       string `xml:"connected"`
	Uptime          string `xml:"uptime"`
	SoftwareVersion string `xml:"sw-version"`
}

// DeviceList is the parsed result of "show devices all|connected".
type DeviceList struct {
	Host    string
	Devices []Device
}

// Interface joins a firewall interface's operational and hardware data.
type Interface struct {
	Name  string
	State string
	IP    string
	Zone  string
}

// InterfaceReport is the parsed result of "show interface all" for one
// firewall.
type InterfaceReport struct {
	Host       string
	Interfaces []Interface
}

// ConfigDocument is a configuration subtree fetched over the XML API.
type ConfigDocument struct {
	Host string
	XML  string
}

// ParseKey extracts the API key from a keygen response.
func ParseKey(host string, raw []byte) (string, error) {
	var resp struct {
		Key string `xml:"result>key"`
	}
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return "", &ParseError{Host: host, Err: err}
	}
	if resp.Key == "" {
		return "", &ParseError{Host: host, Err: fmt.Errorf("no key in response")}
	}
	return resp.Key, nil
}

// ParseDeviceList decodes a managed-device response, sorted by hostname.
func ParseDeviceList(host string, raw []byte) (DeviceList, error) {
	var resp struct {
		Devices []Device `xml:"result>devices>entry"`
	}
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return DeviceList{}, &ParseError{Host: host, Err: err}
	}
	sort.Slice(resp.Devices, func(i, j int) bool {
		return resp.Devices[i].Hostname < resp.Devices[j].Hostname
	})
	return DeviceList{Host: host, Devices: resp.Devices}, nil
}

// ParseInterfaceReport joins the ifnet and hw sections of a
// "show interface all" response by interface name.
func ParseInterfaceReport(host string, raw []byte) (InterfaceReport, error) {
	var resp struct {
		Network []struct {
			Name string `xml:"name"`
			IP   string `xml:"ip"`
			Zone string `xml:"zone"`
		} `xml:"result>ifnet>entry"`
		Hardware []struct {
			Name  string `xml:"name"`
			State string `xml:"state"`
		} `xml:"result>hw>entry"`
	}
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return InterfaceReport{}, &ParseError{Host: host, Err: err}
	}

	states := make(map[string]string, len(resp.Hardware))
	for _, hw := range resp.Hardware {
		states[hw.Name] = hw.State
	}

	report := InterfaceReport{Host: host}
	for _, ifnet := range resp.Network {
		state, ok := states[ifnet.Name]
		if !ok {
			// Logical interfaces carry no hardware state
			state = "n/a"
		}
		report.Interfaces = append(report.Interfaces, Interface{
			Name:  ifnet.Name,
			State: state,
			IP:    ifnet.IP,
			Zone:  ifnet.Zone,
		})
	}
	return report, nil
}

// ParseConfigDocument extracts the result subtree of a configuration
// response.
func ParseConfigDocument(host string, raw []byte) (ConfigDocument, error) {
	var resp struct {
		Config struct {
			InnerXML string `xml:",innerxml"`
		} `xml:"result"`
	}
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return ConfigDocument{}, &ParseError{Host: host, Err: err}
	}
	return ConfigDocument{Host: host, XML: strings.TrimSpace(resp.Config.InnerXML)}, nil
}

// ArpEntry is one ARP cache entry.
type ArpEntry struct {
	Interface string `xml:"interface"`
	Address   string `xml:"ip"`
}

// ParseArpCache decodes a "show arp" response.
func ParseArpCache(host string, raw []byte) ([]ArpEntry, error) {
	var resp struct {
		Entries []ArpEntry `xml:"result>entries>entry"`
	}
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return nil, &ParseError{Host: host, Err: err}
	}
	return resp.Entries, nil
}

var ipv4RE = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// BareIP strips the prefix length from an interface address, returning
// the empty string when the field holds no IPv4 address.
func BareIP(addr string) string {
	return ipv4RE.FindString(addr)
}
