package logging

// Event types emitted by the task layer. Registration events carry no tick;
// they happen during host bootstrap before the clock starts.
const (
	EventProviderRegistered EventType = "registry.provider_registered"
	EventBaseEntryAdded     EventType = "registry.base_entry_added"
	EventRegistryFrozen     EventType = "registry.frozen"
	EventLateRegistration   EventType = "registry.late_registration"
	EventCompositionServed  EventType = "compose.served"
	EventWorkerStarted      EventType = "worker.started"
	EventWorkerFinished     EventType = "worker.finished"
)

const (
	CategoryRegistry = "registry"
	CategoryCompose  = "compose"
	CategoryWorker   = "worker"
)
