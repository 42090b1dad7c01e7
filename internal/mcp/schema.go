package mcp

// SeatsInput defines the input for the seatsim_seats tool.
// Zero fields take the server defaults, as in every tool input.
type SeatsInput struct {
	Seats   int    `json:"seats,omitempty" jsonschema:"Total number of seats on the aircraft (default from config, 100)"`
	Columns string `json:"columns,omitempty" jsonschema:"Column labels of one row, one character per column (default from config, ABCDEF)"`
}

// SeatsOutput defines the output for the seatsim_seats tool.
type SeatsOutput struct {
	Seats    []string `json:"seats" jsonschema:"Seat labels in row-major order"`
	Count    int      `json:"count" jsonschema:"Number of seats"`
	RowWidth int      `json:"row_width" jsonschema:"Seats per row"`
}

// SeatingInput defines the input for the seatsim_seating tool.
type SeatingInput struct {
	Passengers int    `json:"passengers,omitempty" jsonschema:"Number of passengers boarding (default from config, 100)"`
	Seats      int    `json:"seats,omitempty" jsonschema:"Total number of seats on the aircraft (default from config, 100)"`
	Columns    string `json:"columns,omitempty" jsonschema:"Column labels of one row, one character per column (default from config, ABCDEF)"`
	Seed       uint64 `json:"seed,omitempty" jsonschema:"Random seed for a reproducible draw (default from config, 0 for fresh entropy)"`
}

// SeatAssignment is one passenger's assigned seat.
type SeatAssignment struct {
	Passenger int    `json:"passenger"`
	Seat      string `json:"seat"`
}

// SeatingOutput defines the output for the seatsim_seating tool.
type SeatingOutput struct {
	Assignments []SeatAssignment `json:"assignments" jsonschema:"Assigned seat per passenger, ordered by passenger number"`
	Count       int              `json:"count" jsonschema:"Number of passengers"`
	Seed        uint64           `json:"seed" jsonschema:"Seed that reproduces this draw"`
}

// SimulateInput defines the input for the seatsim_simulate tool.
type SimulateInput struct {
	Passengers int    `json:"passengers,omitempty" jsonschema:"Number of passengers boarding (default from config, 100)"`
	Seats      int    `json:"seats,omitempty" jsonschema:"Total number of seats on the aircraft (default from config, 100)"`
	Columns    string `json:"columns,omitempty" jsonschema:"Column labels of one row, one character per column (default from config, ABCDEF)"`
	Iterations int    `json:"iterations,omitempty" jsonschema:"Number of boarding trials (default from config)"`
	Workers    int    `json:"workers,omitempty" jsonschema:"Goroutines sharing the trials (default from config)"`
	Seed       uint64 `json:"seed,omitempty" jsonschema:"Random seed for a reproducible run (default from config, 0 for fresh entropy)"`
}

// SimulateOutput defines the output for the seatsim_simulate tool.
type SimulateOutput struct {
	Probability float64 `json:"probability" jsonschema:"Fraction of trials in which the last passenger got their own seat"`
	Successes   int     `json:"successes" jsonschema:"Number of successful trials"`
	Iterations  int     `json:"iterations" jsonschema:"Number of trials run"`
	Workers     int     `json:"workers" jsonschema:"Number of workers used"`
	Seed        uint64  `json:"seed" jsonschema:"Seed that reproduces this run"`
	Message     string  `json:"message" jsonschema:"Human-readable summary"`
}
