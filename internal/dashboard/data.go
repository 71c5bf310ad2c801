// Package dashboard holds the static display data of the control panel.
package dashboard

// Station is a stop on the line.
type Station struct {
	ID   string
	Name string
	Code string
	Lat  float64
	Lng  float64
}

// Display returns "Name (CODE)".
func (s Station) Display() string {
	return s.Name + " (" + s.Code + ")"
}

// Status is the punctuality of a train card.
type Status string

const (
	OnTime  Status = "ON-TIME"
	Delayed Status = "DELAYED"
)

// TrainCard is one entry in the upline or downline section.
type TrainCard struct {
	Number      string
	Destination Station
	Status      Status
	ETA         string
	Platform    string
	Distance    string
}

// Weather is the weather panel.
type Weather struct {
	TemperatureC int
	Condition    string
	HumidityPct  int
	WindKmh      int
}

// NodeStatus is the health of a subsystem in the topology panel.
type NodeStatus string

const (
	Online  NodeStatus = "ONLINE"
	Warning NodeStatus = "WARNING"
	Offline NodeStatus = "OFFLINE"
)

// Node is one subsystem of the topology panel.
type Node struct {
	Name   string
	Status NodeStatus
	Power  int
}

// Train is a marker's caption on the track overview.
type Train struct {
	Name     string
	Location string
	Near     Station
}

// Data is everything the dashboard displays besides the clock and the
// animated markers.
type Data struct {
	Title    string
	Subtitle string
	Upline   TrainCard
	Downline TrainCard
	Weather  Weather
	Nodes    []Node
	MapRev   string
	TrainA   Train
	TrainB   Train
}

// Stations of the Coimbatore section.
var (
	Coimbatore      = Station{ID: "cbe", Name: "Coimbatore Junction", Code: "CBE", Lat: 11.018, Lng: 76.970}
	CoimbatoreNorth = Station{ID: "cbf", Name: "Coimbatore North Junction", Code: "CBF", Lat: 11.039, Lng: 76.983}
	Podanur         = Station{ID: "ptj", Name: "Podanur Junction", Code: "PTJ", Lat: 10.974, Lng: 76.933}
	Singanallur     = Station{ID: "shi", Name: "Singanallur", Code: "SHI", Lat: 11.005, Lng: 76.991}
)

// Stations lists every known station.
func Stations() []Station {
	return []Station{Coimbatore, CoimbatoreNorth, Podanur, Singanallur}
}

// StationByCode looks a station up by its code, case-sensitively.
func StationByCode(code string) (Station, bool) {
	for _, s := range Stations() {
		if s.Code == code {
			return s, true
		}
	}
	return Station{}, false
}

// Default returns the stock panel contents.
func Default() Data {
	return Data{
		Title:    "CABIN SIDE CONTROL",
		Subtitle: "Real-Time Transit Monitoring System",
		Upline: TrainCard{
			Number:      "12675 Kovai Express",
			Destination: Coimbatore,
			Status:      OnTime,
			ETA:         "5 min",
			Platform:    "1",
			Distance:    "4.2 km",
		},
		Downline: TrainCard{
			Number:      "56324 Coimbatore Local",
			Destination: Podanur,
			Status:      Delayed,
			ETA:         "8 min",
			Platform:    "3",
			Distance:    "6.1 km",
		},
		Weather: Weather{
			TemperatureC: 22,
			Condition:    "Partly Cloudy",
			HumidityPct:  65,
			WindKmh:      12,
		},
		Nodes: []Node{
			{Name: "Power Core", Status: Online, Power: 98},
			{Name: "Communications", Status: Online, Power: 87},
			{Name: "HVAC System", Status: Online, Power: 92},
			{Name: "Sensor Array", Status: Warning, Power: 73},
			{Name: "Control Unit", Status: Online, Power: 95},
			{Name: "Security", Status: Online, Power: 100},
		},
		MapRev: "v2.3.1",
		TrainA: Train{Name: "Express 12675", Location: "KM 45.2", Near: Coimbatore},
		TrainB: Train{Name: "Local 56324", Location: "KM 78.6", Near: Podanur},
	}
}

// OnlineCount returns how many nodes report ONLINE.
func (d Data) OnlineCount() int {
	n := 0
	for _, node := range d.Nodes {
		if node.Status == Online {
			n++
		}
	}
	return n
}

// TrainGap is the great-circle distance in km between the stations the two
// overview trains are near.
func (d Data) TrainGap() float64 {
	return Haversine(d.TrainA.Near, d.TrainB.Near)
}
