package capability

// Controller variables read by the builders.
var (
	VarModeState          = Variable{"urn:micasaverde-com:serviceId:HVAC_OperatingState1", "ModeState"}
	VarModeStatus         = Variable{"urn:upnp-org:serviceId:HVAC_UserOperatingMode1", "ModeStatus"}
	VarCurrentTemperature = Variable{"urn:upnp-org:serviceId:TemperatureSensor1", "CurrentTemperature"}
	VarCurrentSetpoint    = Variable{"urn:upnp-org:serviceId:TemperatureSetpoint1", "CurrentSetpoint"}
	VarThermostatUnits    = Variable{"urn:honeywell-com:serviceId:ThermostatData1", "ThermostatUnits"}
	VarIndoorHumidity     = Variable{"urn:honeywell-com:serviceId:ThermostatData1", "IndoorHumidity"}
	VarLockStatus         = Variable{"urn:micasaverde-com:serviceId:DoorLock1", "Status"}
	VarLockTarget         = Variable{"urn:micasaverde-com:serviceId:DoorLock1", "Target"}
	VarBatteryLevel       = Variable{"urn:micasaverde-com:serviceId:HaDevice1", "BatteryLevel"}
)
