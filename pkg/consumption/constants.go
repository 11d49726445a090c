package consumption

// Loads are kept in tenths of a kWh so weekly sums stay exact.
const (
	// Per room per day: 0.4 kWh plus 0.8 kWh. Rooms are bedrooms plus one.
	baseTenthsPerRoom = 4 + 8

	// Each appliance used on a day adds 3 kWh.
	applianceTenths = 30

	tenthsPerKWh = 10
)

const (
	// BaseLoadPerRoom is the daily base load in kWh for each room
	BaseLoadPerRoom = float64(baseTenthsPerRoom) / tenthsPerKWh

	// ApplianceKWh is the daily load of a single appliance
	ApplianceKWh = float64(applianceTenths) / tenthsPerKWh

	// WeeksPerMonth is the average number of weeks in a month
	WeeksPerMonth = 4.33
)
