package protocol

// Wire IDs for every RPC and Packet spec.md §6 lists as the catalog
// implementers must provide. Several IDs are intentionally reused across
// direction (e.g. PlayerRequestClass / PlayerRequestClassResponse both sit
// at RPC 128): identity on the wire is (Category, ID), not ID alone, and a
// direction-typed struct exists for each side rather than one ambiguous
// struct (see message.go's Key type and the "Rationale for
// direction-overloaded IDs" note in spec.md §4.B).
const (
	// Connection / session
	IDPlayerConnect             uint8 = 25
	IDNPCConnect                uint8 = 54
	IDPlayerJoin                uint8 = 137
	IDPlayerQuit                uint8 = 138
	IDPlayerInit                uint8 = 139
	IDPlayerSpawn               uint8 = 52
	IDPlayerRequestClass        uint8 = 128
	IDPlayerRequestSpawn        uint8 = 129
	IDImmediatelySpawnPlayer    uint8 = 129
	IDClientCheck               uint8 = 103
	IDPlayerClose               uint8 = 40

	// Movement / state
	IDSetPlayerPosition               uint8 = 12
	IDSetPlayerPositionFindZ          uint8 = 13
	IDSetPlayerFacingAngle            uint8 = 19
	IDSetPlayerHealth                 uint8 = 14
	IDSetPlayerArmour                 uint8 = 66
	IDSetPlayerVelocity               uint8 = 90
	IDSetPlayerGravity                uint8 = 146
	IDTogglePlayerControllable        uint8 = 15
	IDSetPlayerInterior               uint8 = 156
	IDSetPlayerVirtualWorld           uint8 = 48
	IDSetWorldBounds                  uint8 = 17
	IDSetPlayerSkin                   uint8 = 153
	IDSetPlayerTeam                   uint8 = 69
	IDSetPlayerFightingStyle          uint8 = 89
	IDSetPlayerSpecialAction          uint8 = 88
	IDSetPlayerSkillLevel             uint8 = 34
	IDSetPlayerColor                  uint8 = 72
	IDSetPlayerName                   uint8 = 11
	IDSetPlayerWantedLevel            uint8 = 133
	IDToggleWidescreen                uint8 = 111
	IDDisableRemoteVehicleCollisions  uint8 = 167
	IDSetPlayerCameraTargeting        uint8 = 170

	// Combat
	IDGivePlayerWeapon        uint8 = 22
	IDResetPlayerWeapons      uint8 = 21
	IDSetPlayerArmedWeapon    uint8 = 67
	IDSetPlayerAmmo           uint8 = 145
	IDOnPlayerDeath           uint8 = 53
	IDPlayerDeath             uint8 = 166
	IDSendDeathMessage        uint8 = 55
	IDOnPlayerGiveTakeDamage  uint8 = 115
	IDOnPlayerDamageActor     uint8 = 177
	IDCreateExplosion         uint8 = 79

	// Camera
	IDSetPlayerCameraPosition      uint8 = 157
	IDSetPlayerCameraLookAt        uint8 = 158
	IDSetPlayerCameraBehindPlayer  uint8 = 162
	IDInterpolateCamera            uint8 = 82
	IDAttachCameraToObject         uint8 = 81
	IDOnPlayerCameraTarget         uint8 = 168

	// Chat & GT
	IDSendClientMessage            uint8 = 93
	IDPlayerRequestChatMessage     uint8 = 101
	IDPlayerRequestCommandMessage  uint8 = 50
	IDSetPlayerChatBubble          uint8 = 59
	IDSendGameText                 uint8 = 73
	IDSetPlayerShopName            uint8 = 33
	IDSetPlayerDrunkLevel          uint8 = 35
	IDPlayAudioStreamForPlayer     uint8 = 41
	IDStopAudioStreamForPlayer     uint8 = 42
	IDPlayCrimeReport              uint8 = 112
	IDPlayerPlaySound              uint8 = 16

	// World
	IDRemoveBuildingForPlayer     uint8 = 43
	IDSetPlayerTime               uint8 = 29
	IDTogglePlayerClock           uint8 = 30
	IDSetPlayerWorldTime          uint8 = 94
	IDSetPlayerWeather            uint8 = 152
	IDSendGameTimeUpdate          uint8 = 60
	IDSetPlayerMapIcon            uint8 = 56
	IDRemovePlayerMapIcon         uint8 = 144
	IDShowPlayerNameTagForPlayer  uint8 = 80
	IDEnableStuntBonusForPlayer   uint8 = 104
	IDOnPlayerClickMap            uint8 = 119
	IDOnPlayerClickPlayer         uint8 = 23
	IDOnPlayerInteriorChange      uint8 = 118

	// Streaming (players)
	IDPlayerStreamIn  uint8 = 32
	IDPlayerStreamOut uint8 = 163

	// Vehicles
	IDStreamInVehicle          uint8 = 164
	IDStreamOutVehicle         uint8 = 165
	IDPutPlayerInVehicle       uint8 = 70
	IDRemovePlayerFromVehicle  uint8 = 71
	IDEnterVehicle             uint8 = 26
	IDExitVehicle              uint8 = 154
	IDSetVehicleHealth         uint8 = 147
	IDSetVehicleZAngle         uint8 = 160
	IDSetVehiclePosition       uint8 = 159
	IDSetVehiclePlate          uint8 = 123
	IDVehicleDeath             uint8 = 136
	IDLinkVehicleToInterior    uint8 = 65
	IDAttachTrailer            uint8 = 148
	IDDetachTrailer            uint8 = 149
	IDSetVehicleVelocity       uint8 = 91
	IDSetVehicleParams         uint8 = 24
	IDSetVehicleDamageStatus   uint8 = 106
	IDRemoveVehicleComponent   uint8 = 57
	IDSCMEvent                 uint8 = 96

	// Objects
	IDCreateObject                    uint8 = 44
	IDDestroyObject                   uint8 = 47
	IDMoveObject                      uint8 = 99
	IDStopObject                      uint8 = 122
	IDSetObjectPosition               uint8 = 45
	IDSetObjectRotation               uint8 = 46
	IDAttachObjectToPlayer            uint8 = 75
	IDSetPlayerObjectMaterial         uint8 = 84
	IDSetPlayerAttachedObject         uint8 = 113
	IDPlayerBeginObjectSelect         uint8 = 27
	IDOnPlayerSelectObject            uint8 = 27
	IDPlayerBeginObjectEdit           uint8 = 117
	IDOnPlayerEditObject              uint8 = 117
	IDPlayerCancelObjectEdit          uint8 = 28
	IDPlayerBeginAttachedObjectEdit   uint8 = 116
	IDOnPlayerEditAttachedObject      uint8 = 116

	// Actors
	IDShowActorForPlayer              uint8 = 171
	IDHideActorForPlayer              uint8 = 172
	IDApplyActorAnimationForPlayer    uint8 = 173
	IDClearActorAnimationsForPlayer   uint8 = 174
	IDSetActorFacingAngleForPlayer    uint8 = 175
	IDSetActorPosForPlayer            uint8 = 176
	IDSetActorHealthForPlayer         uint8 = 178

	// Pickups
	IDPlayerCreatePickup    uint8 = 95
	IDPlayerDestroyPickup   uint8 = 63
	IDOnPlayerPickUpPickup  uint8 = 131

	// TextDraws
	IDPlayerShowTextDraw          uint8 = 134
	IDPlayerHideTextDraw          uint8 = 135
	IDPlayerTextDrawSetString     uint8 = 105
	IDPlayerBeginTextDrawSelect   uint8 = 83
	IDOnPlayerSelectTextDraw      uint8 = 83

	// TextLabels
	IDPlayerShowTextLabel uint8 = 36
	IDPlayerHideTextLabel uint8 = 58

	// Checkpoints
	IDSetCheckpoint          uint8 = 107
	IDDisableCheckpoint      uint8 = 37
	IDSetRaceCheckpoint      uint8 = 38
	IDDisableRaceCheckpoint  uint8 = 39

	// Dialogs
	IDShowDialog             uint8 = 61
	IDOnPlayerDialogResponse uint8 = 62

	// Gang zones
	IDShowGangZone      uint8 = 108
	IDHideGangZone      uint8 = 120
	IDFlashGangZone     uint8 = 121
	IDStopFlashGangZone uint8 = 85

	// Menus
	IDPlayerInitMenu          uint8 = 76
	IDPlayerShowMenu          uint8 = 77
	IDPlayerHideMenu          uint8 = 78
	IDOnPlayerSelectedMenuRow uint8 = 132
	IDOnPlayerExitedMenu      uint8 = 140

	// Sync packets (unreliable, per-tick)
	IDPlayerFootSync       uint8 = 207
	IDPlayerVehicleSync    uint8 = 200
	IDPlayerAimSync        uint8 = 203
	IDPlayerBulletSync     uint8 = 206
	IDPlayerStatsSync      uint8 = 205
	IDPlayerWeaponsUpdate  uint8 = 204
	IDPlayerMarkersSync    uint8 = 208
	IDPlayerSpectatorSync  uint8 = 212
	IDPlayerPassengerSync  uint8 = 211
	IDPlayerUnoccupiedSync uint8 = 209
	IDPlayerTrailerSync    uint8 = 210

	// Console
	IDPlayerRconCommand uint8 = 201
)
