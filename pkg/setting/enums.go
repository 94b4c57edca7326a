package setting

// Every enumeration below packs one byte-valued preference from Rekordbox's
// "My Settings" page. Values are given verbatim (usually 0x80 + n); a byte
// that matches none of a field's named variants is a decode error, never a
// silent default.

type PlayMode uint8

const (
	PlayModeContinue PlayMode = 0x80
	PlayModeSingle   PlayMode = 0x81
)

type EjectLock uint8

const (
	EjectLockUnlock EjectLock = 0x80
	EjectLockLock   EjectLock = 0x81
)

type NeedleLock uint8

const (
	NeedleLockUnlock NeedleLock = 0x80
	NeedleLockLock   NeedleLock = 0x81
)

type QuantizeBeatValue uint8

const (
	QuantizeBeatValueFullBeat    QuantizeBeatValue = 0x80
	QuantizeBeatValueHalfBeat    QuantizeBeatValue = 0x81
	QuantizeBeatValueQuarterBeat QuantizeBeatValue = 0x82
	QuantizeBeatValueEighthBeat  QuantizeBeatValue = 0x83
)

type HotCueAutoLoad uint8

const (
	HotCueAutoLoadOff              HotCueAutoLoad = 0x80
	HotCueAutoLoadOn               HotCueAutoLoad = 0x81
	HotCueAutoLoadRekordboxSetting HotCueAutoLoad = 0x82
)

type HotCueColor uint8

const (
	HotCueColorOff HotCueColor = 0x80
	HotCueColorOn  HotCueColor = 0x81
)

type AutoCueLevel uint8

const (
	AutoCueLevelMinus36dB AutoCueLevel = 0x80
	AutoCueLevelMinus42dB AutoCueLevel = 0x81
	AutoCueLevelMinus48dB AutoCueLevel = 0x82
	AutoCueLevelMinus54dB AutoCueLevel = 0x83
	AutoCueLevelMinus60dB AutoCueLevel = 0x84
	AutoCueLevelMinus66dB AutoCueLevel = 0x85
	AutoCueLevelMinus72dB AutoCueLevel = 0x86
	AutoCueLevelMinus78dB AutoCueLevel = 0x87
	AutoCueLevelMemory    AutoCueLevel = 0x88
)

type TimeMode uint8

const (
	TimeModeElapsed TimeMode = 0x80
	TimeModeRemain  TimeMode = 0x81
)

type AutoCue uint8

const (
	AutoCueOff AutoCue = 0x80
	AutoCueOn  AutoCue = 0x81
)

type JogMode uint8

const (
	JogModeVinyl JogMode = 0x80
	JogModeCDJ   JogMode = 0x81
)

type TempoRange uint8

const (
	TempoRangeSixPercent     TempoRange = 0x80
	TempoRangeTenPercent     TempoRange = 0x81
	TempoRangeSixteenPercent TempoRange = 0x82
	TempoRangeWide           TempoRange = 0x83
)

type MasterTempo uint8

const (
	MasterTempoOff MasterTempo = 0x80
	MasterTempoOn  MasterTempo = 0x81
)

type Quantize uint8

const (
	QuantizeOff Quantize = 0x80
	QuantizeOn  Quantize = 0x81
)

type Sync uint8

const (
	SyncOff Sync = 0x80
	SyncOn  Sync = 0x81
)

type PhaseMeter uint8

const (
	PhaseMeterType1 PhaseMeter = 0x80
	PhaseMeterType2 PhaseMeter = 0x81
)

type Waveform uint8

const (
	WaveformWaveform   Waveform = 0x80
	WaveformPhaseMeter Waveform = 0x81
)

type WaveformDivisions uint8

const (
	WaveformDivisionsTimeScale WaveformDivisions = 0x80
	WaveformDivisionsPhrase    WaveformDivisions = 0x81
)

type VinylSpeedAdjust uint8

const (
	VinylSpeedAdjustTouchRelease VinylSpeedAdjust = 0x80
	VinylSpeedAdjustTouch        VinylSpeedAdjust = 0x81
	VinylSpeedAdjustRelease      VinylSpeedAdjust = 0x82
)

type BeatJumpBeatValue uint8

const (
	BeatJumpBeatValueHalfBeat     BeatJumpBeatValue = 0x80
	BeatJumpBeatValueOneBeat      BeatJumpBeatValue = 0x81
	BeatJumpBeatValueTwoBeat      BeatJumpBeatValue = 0x82
	BeatJumpBeatValueFourBeat     BeatJumpBeatValue = 0x83
	BeatJumpBeatValueEightBeat    BeatJumpBeatValue = 0x84
	BeatJumpBeatValueSixteenBeat  BeatJumpBeatValue = 0x85
	BeatJumpBeatValueThirtytwoBeat BeatJumpBeatValue = 0x86
	BeatJumpBeatValueSixtyfourBeat BeatJumpBeatValue = 0x87
)

type Language uint8

const (
	LanguageEnglish            Language = 0x81
	LanguageFrench             Language = 0x82
	LanguageGerman             Language = 0x83
	LanguageItalian            Language = 0x84
	LanguageDutch              Language = 0x85
	LanguageSpanish            Language = 0x86
	LanguageRussian            Language = 0x87
	LanguageKorean             Language = 0x88
	LanguageChineseSimplified  Language = 0x89
	LanguageChineseTraditional Language = 0x8A
	LanguageJapanese           Language = 0x8B
	LanguagePortuguese         Language = 0x8C
	LanguageSwedish            Language = 0x8D
	LanguageCzech              Language = 0x8E
	LanguageHungarian          Language = 0x8F
	LanguageDanish             Language = 0x90
	LanguageGreek              Language = 0x91
	LanguageTurkish            Language = 0x92
)

type LCDBrightness uint8

const (
	LCDBrightnessOne   LCDBrightness = 0x81
	LCDBrightnessTwo   LCDBrightness = 0x82
	LCDBrightnessThree LCDBrightness = 0x83
	LCDBrightnessFour  LCDBrightness = 0x84
	LCDBrightnessFive  LCDBrightness = 0x85
)

type JogLCDBrightness uint8

const (
	JogLCDBrightnessOne   JogLCDBrightness = 0x81
	JogLCDBrightnessTwo   JogLCDBrightness = 0x82
	JogLCDBrightnessThree JogLCDBrightness = 0x83
	JogLCDBrightnessFour  JogLCDBrightness = 0x84
	JogLCDBrightnessFive  JogLCDBrightness = 0x85
)

type JogDisplayMode uint8

const (
	JogDisplayModeAuto    JogDisplayMode = 0x80
	JogDisplayModeInfo    JogDisplayMode = 0x81
	JogDisplayModeSimple  JogDisplayMode = 0x82
	JogDisplayModeArtwork JogDisplayMode = 0x83
)

type SlipFlashing uint8

const (
	SlipFlashingOff SlipFlashing = 0x80
	SlipFlashingOn  SlipFlashing = 0x81
)

type OnAirDisplay uint8

const (
	OnAirDisplayOff OnAirDisplay = 0x80
	OnAirDisplayOn  OnAirDisplay = 0x81
)

type JogRingBrightness uint8

const (
	JogRingBrightnessOff   JogRingBrightness = 0x80
	JogRingBrightnessDark  JogRingBrightness = 0x81
	JogRingBrightnessBright JogRingBrightness = 0x82
)

type JogRingIndicator uint8

const (
	JogRingIndicatorOff JogRingIndicator = 0x80
	JogRingIndicatorOn  JogRingIndicator = 0x81
)

type DiscSlotIllumination uint8

const (
	DiscSlotIlluminationOff    DiscSlotIllumination = 0x80
	DiscSlotIlluminationDark   DiscSlotIllumination = 0x81
	DiscSlotIlluminationBright DiscSlotIllumination = 0x82
)

type PadButtonBrightness uint8

const (
	PadButtonBrightnessOne   PadButtonBrightness = 0x81
	PadButtonBrightnessTwo   PadButtonBrightness = 0x82
	PadButtonBrightnessThree PadButtonBrightness = 0x83
	PadButtonBrightnessFour  PadButtonBrightness = 0x84
	PadButtonBrightnessFive  PadButtonBrightness = 0x85
)

type ChannelFaderCurve uint8

const (
	ChannelFaderCurveSteepTop    ChannelFaderCurve = 0x80
	ChannelFaderCurveLinear      ChannelFaderCurve = 0x81
	ChannelFaderCurveSteepBottom ChannelFaderCurve = 0x82
)

type CrossfaderCurve uint8

const (
	CrossfaderCurveConstantPower CrossfaderCurve = 0x80
	CrossfaderCurveSlowCut       CrossfaderCurve = 0x81
	CrossfaderCurveFastCut       CrossfaderCurve = 0x82
)

type ChannelFaderCurveLongFader uint8

const (
	ChannelFaderCurveLongFaderExponential ChannelFaderCurveLongFader = 0x80
	ChannelFaderCurveLongFaderSmooth      ChannelFaderCurveLongFader = 0x81
	ChannelFaderCurveLongFaderLinear      ChannelFaderCurveLongFader = 0x82
)

type HeadphonesPreEQ uint8

const (
	HeadphonesPreEQPostEQ HeadphonesPreEQ = 0x80
	HeadphonesPreEQPreEQ  HeadphonesPreEQ = 0x81
)

type HeadphonesMonoSplit uint8

const (
	HeadphonesMonoSplitMonoSplit HeadphonesMonoSplit = 0x80
	HeadphonesMonoSplitStereo    HeadphonesMonoSplit = 0x81
)

type BeatFXQuantize uint8

const (
	BeatFXQuantizeOff BeatFXQuantize = 0x80
	BeatFXQuantizeOn  BeatFXQuantize = 0x81
)

type MicLowCut uint8

const (
	MicLowCutOff MicLowCut = 0x80
	MicLowCutOn  MicLowCut = 0x81
)

type TalkOverMode uint8

const (
	TalkOverModeAdvanced TalkOverMode = 0x80
	TalkOverModeNormal   TalkOverMode = 0x81
)

type TalkOverLevel uint8

const (
	TalkOverLevelMinus24dB TalkOverLevel = 0x80
	TalkOverLevelMinus18dB TalkOverLevel = 0x81
	TalkOverLevelMinus12dB TalkOverLevel = 0x82
	TalkOverLevelMinus6dB  TalkOverLevel = 0x83
)

type MidiChannel uint8

const (
	MidiChannelOne     MidiChannel = 0x80
	MidiChannelTwo     MidiChannel = 0x81
	MidiChannelThree   MidiChannel = 0x82
	MidiChannelFour    MidiChannel = 0x83
	MidiChannelFive    MidiChannel = 0x84
	MidiChannelSix     MidiChannel = 0x85
	MidiChannelSeven   MidiChannel = 0x86
	MidiChannelEight   MidiChannel = 0x87
	MidiChannelNine    MidiChannel = 0x88
	MidiChannelTen     MidiChannel = 0x89
	MidiChannelEleven  MidiChannel = 0x8A
	MidiChannelTwelve  MidiChannel = 0x8B
	MidiChannelThirteen MidiChannel = 0x8C
	MidiChannelFourteen MidiChannel = 0x8D
	MidiChannelFifteen MidiChannel = 0x8E
	MidiChannelSixteen MidiChannel = 0x8F
)

type MidiButtonType uint8

const (
	MidiButtonTypeToggle  MidiButtonType = 0x80
	MidiButtonTypeTrigger MidiButtonType = 0x81
)

type MixerDisplayBrightness uint8

const (
	MixerDisplayBrightnessWhite MixerDisplayBrightness = 0x80
	MixerDisplayBrightnessOne   MixerDisplayBrightness = 0x81
	MixerDisplayBrightnessTwo   MixerDisplayBrightness = 0x82
	MixerDisplayBrightnessThree MixerDisplayBrightness = 0x83
	MixerDisplayBrightnessFour  MixerDisplayBrightness = 0x84
	MixerDisplayBrightnessFive  MixerDisplayBrightness = 0x85
)

type MixerIndicatorBrightness uint8

const (
	MixerIndicatorBrightnessOne   MixerIndicatorBrightness = 0x80
	MixerIndicatorBrightnessTwo   MixerIndicatorBrightness = 0x81
	MixerIndicatorBrightnessThree MixerIndicatorBrightness = 0x82
)
