package panos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keygenResponse = `<response status="success"><result><key>LUFRPT1abc123==</key></result></response>`

const devicesResponse = `<response status="success"><result><devices>
  <entry name="007200001056">
    <hostname>fw02</hostname>
    <ip-address>10.0.0.2</ip-address>
    <serial>007200001056</serial>
    <model>PA-3220</model>
    <connected>yes</connected>
    <uptime>103 days</uptime>
    <sw-version>10.1.6</sw-version>
  </entry>
  <entry name="007200001055">
    <hostname>fw01</hostname>
    <ip-address>10.0.0.1</ip-address>
    <serial>007200001055</serial>
    <model>PA-3220</model>
    <connected>no</connected>
    <uptime>0 days</uptime>
    <sw-version>10.1.6</sw-version>
  </entry>
</devices></result></response>`

const interfacesResponse = `<response status="success"><result>
  <ifnet>
    <entry>
      <name>ethernet1/1</name>
      <ip>10.1.1.1/24</ip>
      <zone>trust</zone>
    </entry>
    <entry>
      <name>tunnel.1</name>
      <ip>N/A</ip>
      <zone>vpn</zone>
    </entry>
  </ifnet>
  <hw>
    <entry>
      <name>ethernet1/1</name>
      <state>up</state>
    </entry>
  </hw>
</result></response>`

func TestParseKey(t *testing.T) {
	key, err := ParseKey("fw01", []byte(keygenResponse))
	require.NoError(t, err)
	assert.Equal(t, "LUFRPT1abc123==", key)
}

func TestParseKeyMissing(t *testing.T) {
	_, err := ParseKey("fw01", []byte(`<response status="success"><result/></response>`))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "fw01", perr.Host)
}

func TestParseMalformedXMLNamesHost(t *testing.T) {
	_, err := ParseDeviceList("panorama01", []byte("<response><unclosed"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "panorama01", perr.Host)
	assert.Contains(t, err.Error(), "panorama01")
}

func TestParseDeviceListSorted(t *testing.T) {
	list, err := ParseDeviceList("panorama01", []byte(devicesResponse))
	require.NoError(t, err)
	require.Len(t, list.Devices, 2)
	assert.Equal(t, "fw01", list.Devices[0].Hostname)
	assert.Equal(t, "fw02", list.Devices[1].Hostname)
	assert.Equal(t, "10.0.0.2", list.Devices[1].Address)
	assert.Equal(t, "no", list.Devices[0].Connected)
}

func TestParseInterfaceReport(t *testing.T) {
	report, err := ParseInterfaceReport("fw01", []byte(interfacesResponse))
	require.NoError(t, err)
	require.Len(t, report.Interfaces, 2)

	assert.Equal(t, Interface{Name: "ethernet1/1", State: "up", IP: "10.1.1.1/24", Zone: "trust"}, report.Interfaces[0])
	assert.Equal(t, "n/a", report.Interfaces[1].State, "logical interfaces have no hardware state")
}

func TestParseConfigDocument(t *testing.T) {
	raw := `<response status="success"><result><mgt-config><users/></mgt-config></result></response>`
	doc, err := ParseConfigDocument("fw01", []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "fw01", doc.Host)
	assert.Equal(t, "<mgt-config><users/></mgt-config>", doc.XML)
}

func TestParseArpCache(t *testing.T) {
	raw := `<response status="success"><result><entries>
	  <entry><interface>ethernet1/1</interface><ip>10.1.1.20</ip></entry>
	  <entry><interface>ethernet1/2</interface><ip>10.1.2.30</ip></entry>
	</entries></result></response>`
	entries, err := ParseArpCache("fw01", []byte(raw))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ethernet1/1", entries[0].Interface)
	assert.Equal(t, "10.1.2.30", entries[1].Address)
}

func TestBareIP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.1.1.1/24", "10.1.1.1"},
		{"10.1.1.1", "10.1.1.1"},
		{"N/A", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BareIP(tt.in), tt.in)
	}
}
