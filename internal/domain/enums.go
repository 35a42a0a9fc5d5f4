package domain

// Modality is the form in which an activity was submitted.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityVoice Modality = "voice"
)

func (m Modality) String() string { return string(m) }

func (m Modality) IsValid() bool {
	switch m {
	case ModalityText, ModalityImage, ModalityVoice:
		return true
	}
	return false
}

// Provenance records how the normalized text was obtained.
type Provenance string

const (
	ProvenanceDirect     Provenance = "DIRECT"
	ProvenanceCaption    Provenance = "CAPTION"
	ProvenanceTranscript Provenance = "TRANSCRIPT"
)

func (p Provenance) String() string { return string(p) }

// Blob containers.
const (
	ContainerImages = "images"
	ContainerVoice  = "voice-recordings"
)

// IsKnownContainer reports whether name is one of the blob containers the
// service reads from or writes to.
func IsKnownContainer(name string) bool {
	return name == ContainerImages || name == ContainerVoice
}

// Stage is a step of the analysis pipeline.
type Stage string

const (
	StageReceived           Stage = "RECEIVED"
	StageNormalizing        Stage = "NORMALIZING"
	StageScoring            Stage = "SCORING"
	StageRecording          Stage = "RECORDING"
	StageUpdatingReputation Stage = "UPDATING_REPUTATION"
	StageCompleted          Stage = "COMPLETED"
	StageFailed             Stage = "FAILED"
)

func (s Stage) String() string { return string(s) }
