package unit

// Voltage is the electrical potential dimension, symbol V.
type Voltage struct{}

func (Voltage) Symbol() string { return "#V" }
func (Voltage) Name() string   { return "voltage" }

// Current is the electrical current dimension, symbol A.
type Current struct{}

func (Current) Symbol() string { return "#A" }
func (Current) Name() string   { return "current" }

// Resistance is the electrical resistance dimension, symbol ohm.
type Resistance struct{}

func (Resistance) Symbol() string { return "#Ω" }
func (Resistance) Name() string   { return "resistance" }

// Capacitance is the electrical capacitance dimension, symbol F.
type Capacitance struct{}

func (Capacitance) Symbol() string { return "#F" }
func (Capacitance) Name() string   { return "capacitance" }

// Inductance is the electrical inductance dimension, symbol H.
type Inductance struct{}

func (Inductance) Symbol() string { return "#H" }
func (Inductance) Name() string   { return "inductance" }

// Power is the electrical power dimension, symbol W.
type Power struct{}

func (Power) Symbol() string { return "#W" }
func (Power) Name() string   { return "power" }

// Temperature is the thermal temperature dimension, symbol K.
type Temperature struct{}

func (Temperature) Symbol() string { return "#K" }
func (Temperature) Name() string   { return "temperature" }

// Time is the time-duration dimension, symbol s.
type Time struct{}

func (Time) Symbol() string { return "#s" }
func (Time) Name() string   { return "time" }

// Frequency is the cycles-per-time dimension, symbol Hz.
type Frequency struct{}

func (Frequency) Symbol() string { return "#Hz" }
func (Frequency) Name() string   { return "frequency" }

// Energy is the electrical/thermal energy dimension, symbol J.
type Energy struct{}

func (Energy) Symbol() string { return "#J" }
func (Energy) Name() string   { return "energy" }
